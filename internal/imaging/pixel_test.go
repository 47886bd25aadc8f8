package imaging

import (
	"math"
	"testing"
)

func TestNewRGB_Clamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    RGB
	}{
		{"in range", 10, 20, 30, RGB{10, 20, 30}},
		{"mixed out of range", 300, -10, 128, RGB{255, 0, 128}},
		{"all negative", -1, -1000, math.MinInt32, RGB{0, 0, 0}},
		{"all large", 256, 1000, math.MaxInt32, RGB{255, 255, 255}},
		{"bounds", 0, 255, 0, RGB{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRGB(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("NewRGB(%d,%d,%d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGB_ChannelSettersClamp(t *testing.T) {
	for x := -300; x <= 600; x += 7 {
		want := uint8(max(0, min(255, x)))
		c := RGB{1, 2, 3}

		if got := c.WithRed(x); got.R != want || got.G != 2 || got.B != 3 {
			t.Errorf("WithRed(%d) = %+v, want R=%d", x, got, want)
		}
		if got := c.WithGreen(x); got.G != want || got.R != 1 || got.B != 3 {
			t.Errorf("WithGreen(%d) = %+v, want G=%d", x, got, want)
		}
		if got := c.WithBlue(x); got.B != want || got.R != 1 || got.G != 2 {
			t.Errorf("WithBlue(%d) = %+v, want B=%d", x, got, want)
		}
	}
}

func TestRGB_Hex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{255, 128, 64}, "#ff8040"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{18, 52, 86}, "#123456"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestNewHSL_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		h     int
		s, l  float64
		wantH int
		wantS float64
		wantL float64
	}{
		{"in range", 120, 0.5, 0.25, 120, 0.5, 0.25},
		{"hue saturates high", 400, 0.5, 0.5, 360, 0.5, 0.5},
		{"hue saturates low", -30, 0.5, 0.5, 0, 0.5, 0.5},
		{"saturation high", 10, 1.5, 0.5, 10, 1, 0.5},
		{"lightness low", 10, 0.5, -0.1, 10, 0.5, 0},
		{"NaN", 10, math.NaN(), math.NaN(), 10, 0, 0},
		{"infinities", 10, math.Inf(1), math.Inf(-1), 10, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHSL(tt.h, tt.s, tt.l)
			if c.Hue() != tt.wantH || c.Saturation() != tt.wantS || c.Lightness() != tt.wantL {
				t.Errorf("NewHSL(%d,%v,%v) = (%d,%v,%v), want (%d,%v,%v)",
					tt.h, tt.s, tt.l, c.Hue(), c.Saturation(), c.Lightness(), tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestHSL_SettersClamp(t *testing.T) {
	var c HSL

	for h := -720; h <= 720; h += 13 {
		c.SetHue(h)
		if want := max(0, min(360, h)); c.Hue() != want {
			t.Errorf("SetHue(%d) = %d, want %d", h, c.Hue(), want)
		}
	}

	for v := -2.0; v <= 2.0; v += 0.125 {
		want := math.Max(0, math.Min(1, v))
		c.SetSaturation(v)
		if c.Saturation() != want {
			t.Errorf("SetSaturation(%v) = %v, want %v", v, c.Saturation(), want)
		}
		c.SetLightness(v)
		if c.Lightness() != want {
			t.Errorf("SetLightness(%v) = %v, want %v", v, c.Lightness(), want)
		}
	}
}
