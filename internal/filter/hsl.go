package filter

import "github.com/ironsheep/image-filters/internal/imaging"

// mapHSL converts each pixel to HSL, lets fn edit it, and converts it back.
func mapHSL(img imaging.Pixels, fn func(*imaging.HSL)) {
	mapPixels(img, func(c imaging.RGB) imaging.RGB {
		hsl := imaging.ToHSL(c)
		fn(&hsl)
		return imaging.ToRGB(hsl)
	})
}

// SetHue gives every pixel the same hue, clamped to [0, 360] degrees.
func SetHue(img imaging.Pixels, hue int) {
	mapHSL(img, func(c *imaging.HSL) { c.SetHue(hue) })
}

// SetSaturation gives every pixel the same saturation, clamped to [0, 1].
func SetSaturation(img imaging.Pixels, saturation float64) {
	mapHSL(img, func(c *imaging.HSL) { c.SetSaturation(saturation) })
}

// SetLightness gives every pixel the same lightness, clamped to [0, 1].
func SetLightness(img imaging.Pixels, lightness float64) {
	mapHSL(img, func(c *imaging.HSL) { c.SetLightness(lightness) })
}

// AdjustHue shifts every pixel's hue by delta degrees. The result saturates
// at 0 and 360 rather than wrapping around the color wheel.
func AdjustHue(img imaging.Pixels, delta int) {
	mapHSL(img, func(c *imaging.HSL) { c.SetHue(c.Hue() + delta) })
}

// AdjustSaturation adds delta to every pixel's saturation, saturating at 0 and 1.
func AdjustSaturation(img imaging.Pixels, delta float64) {
	mapHSL(img, func(c *imaging.HSL) { c.SetSaturation(c.Saturation() + delta) })
}

// AdjustLightness adds delta to every pixel's lightness, saturating at 0 and 1.
func AdjustLightness(img imaging.Pixels, delta float64) {
	mapHSL(img, func(c *imaging.HSL) { c.SetLightness(c.Lightness() + delta) })
}
