package filter

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-filters/internal/imaging"
)

// mapPixels replaces every pixel with fn(pixel). Rows are processed in
// parallel; fn must not depend on any other pixel.
func mapPixels(img imaging.Pixels, fn func(imaging.RGB) imaging.RGB) {
	width := img.Width()
	parallel.Line(img.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, fn(img.At(x, y)))
			}
		}
	})
}
