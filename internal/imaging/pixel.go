package imaging

import (
	"cmp"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel and HSL bounds.
const (
	MaxChannel = 255
	MaxHue     = 360
)

// clamp constrains v to the closed range [lo, hi].
//
// Every constructor and setter in this package goes through clamp, so a pixel
// value can never hold an out-of-range channel.
func clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampChannel saturates an integer to the 8-bit channel range.
func clampChannel(v int) uint8 {
	return uint8(clamp(v, 0, MaxChannel))
}

// clampUnit saturates a float to [0, 1]. NaN is treated as 0.
func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 1)
}

// RGB represents a pixel with 8-bit red, green and blue components.
//
// The zero value is black. Values are meant to be copied, not shared.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// NewRGB builds a pixel from integer channels, saturating each one to [0, 255].
//
//	NewRGB(300, -10, 128) == RGB{255, 0, 128}
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// WithRed returns a copy of c with the red channel set to the clamped value.
func (c RGB) WithRed(v int) RGB {
	c.R = clampChannel(v)
	return c
}

// WithGreen returns a copy of c with the green channel set to the clamped value.
func (c RGB) WithGreen(v int) RGB {
	c.G = clampChannel(v)
	return c
}

// WithBlue returns a copy of c with the blue channel set to the clamped value.
func (c RGB) WithBlue(v int) RGB {
	c.B = clampChannel(v)
	return c
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / MaxChannel,
		G: float64(c.G) / MaxChannel,
		B: float64(c.B) / MaxChannel,
	}.Hex()
}

// HSL represents a color in hue/saturation/lightness space.
//
// Hue is in whole degrees [0, 360]; saturation and lightness are in [0, 1].
// Out-of-range inputs saturate at the nearest bound: a hue of 400 becomes 360,
// not 40.
type HSL struct {
	h int
	s float64
	l float64
}

// NewHSL builds an HSL value, clamping every component.
func NewHSL(hue int, saturation, lightness float64) HSL {
	return HSL{
		h: clamp(hue, 0, MaxHue),
		s: clampUnit(saturation),
		l: clampUnit(lightness),
	}
}

// Hue returns the hue in degrees.
func (c HSL) Hue() int { return c.h }

// Saturation returns the saturation in [0, 1].
func (c HSL) Saturation() float64 { return c.s }

// Lightness returns the lightness in [0, 1].
func (c HSL) Lightness() float64 { return c.l }

// SetHue replaces the hue, clamped to [0, 360].
func (c *HSL) SetHue(hue int) { c.h = clamp(hue, 0, MaxHue) }

// SetSaturation replaces the saturation, clamped to [0, 1].
func (c *HSL) SetSaturation(s float64) { c.s = clampUnit(s) }

// SetLightness replaces the lightness, clamped to [0, 1].
func (c *HSL) SetLightness(l float64) { c.l = clampUnit(l) }
