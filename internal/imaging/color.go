package imaging

import (
	"fmt"
	"math"
)

// achromaticEpsilon is the max-min channel spread below which a color is
// treated as gray (hue and saturation forced to 0).
const achromaticEpsilon = 1e-5

// ToHSL converts an RGB pixel to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// The hue is truncated to whole degrees, so a round trip through ToRGB is
// lossy by up to (max-min)/60 units per channel plus one unit of rounding.
func ToHSL(c RGB) HSL {
	rf := float64(c.R) / MaxChannel
	gf := float64(c.G) / MaxChannel
	bf := float64(c.B) / MaxChannel

	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	l := (hi + lo) / 2
	delta := hi - lo

	if delta < achromaticEpsilon {
		return NewHSL(0, 0, l)
	}

	var s float64
	if l > 0.5 {
		s = delta / (2 - hi - lo)
	} else {
		s = delta / (hi + lo)
	}

	var h float64
	switch hi {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}

	return NewHSL(int(h*60), s, l)
}

// ToRGB converts an HSL color back to an RGB pixel.
//
// The sextant is chosen by ceil(hue/60). A hue of exactly 0 has no sextant of
// its own and shares sextant 1 with the rest of the red-to-yellow range, so
// pure reds convert back to red rather than to black.
func ToRGB(c HSL) RGB {
	chroma := (1 - math.Abs(2*c.l-1)) * c.s
	hprime := float64(c.h) / 60
	x := chroma * (1 - math.Abs(math.Mod(hprime, 2)-1))

	var r, g, b float64
	switch sextant := max(int(math.Ceil(hprime)), 1); sextant {
	case 1:
		r, g, b = chroma, x, 0
	case 2:
		r, g, b = x, chroma, 0
	case 3:
		r, g, b = 0, chroma, x
	case 4:
		r, g, b = 0, x, chroma
	case 5:
		r, g, b = x, 0, chroma
	case 6:
		r, g, b = chroma, 0, x
	}

	m := c.l - chroma/2
	return NewRGB(
		int(math.Round(MaxChannel*(r+m))),
		int(math.Round(MaxChannel*(g+m))),
		int(math.Round(MaxChannel*(b+m))),
	)
}

// HSLComponents is the JSON-friendly form of an HSL value.
type HSLComponents struct {
	H int     `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-1 (0=gray, 1=vivid)
	L float64 `json:"l"` // Lightness: 0-1 (0=black, 0.5=normal, 1=white)
}

// ColorResult contains a pixel value in several representations.
type ColorResult struct {
	Hex string        `json:"hex"` // Hex format "#rrggbb"
	RGB RGB           `json:"rgb"` // RGB components
	HSL HSLComponents `json:"hsl"` // HSL representation
}

// SampleColor reads the pixel at (x, y).
//
// Unlike Pixels.At, which returns black for coordinates outside the image,
// SampleColor reports them as an error.
func SampleColor(img Pixels, x, y int) (*ColorResult, error) {
	if x < 0 || x >= img.Width() || y < 0 || y >= img.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := img.At(x, y)
	hsl := ToHSL(c)
	return &ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSL: HSLComponents{H: hsl.Hue(), S: hsl.Saturation(), L: hsl.Lightness()},
	}, nil
}
