package filter

import "github.com/ironsheep/image-filters/internal/imaging"

// Grayscale sets every channel of each pixel to the integer average of its
// red, green and blue channels.
func Grayscale(img imaging.Pixels) {
	mapPixels(img, func(c imaging.RGB) imaging.RGB {
		avg := (int(c.R) + int(c.G) + int(c.B)) / 3
		return imaging.NewRGB(avg, avg, avg)
	})
}

// Invert replaces each channel with 255 minus its value.
func Invert(img imaging.Pixels) {
	mapPixels(img, func(c imaging.RGB) imaging.RGB {
		return imaging.RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}

// Sepia applies the classic sepia tone matrix. Results are truncated toward
// zero and saturate at 255.
func Sepia(img imaging.Pixels) {
	mapPixels(img, func(c imaging.RGB) imaging.RGB {
		r, g, b := float64(c.R), float64(c.G), float64(c.B)
		return imaging.NewRGB(
			int(0.393*r+0.769*g+0.189*b),
			int(0.349*r+0.686*g+0.168*b),
			int(0.272*r+0.534*g+0.131*b),
		)
	})
}
