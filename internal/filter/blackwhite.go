package filter

import (
	"math"
	"slices"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-filters/internal/imaging"
)

var (
	black = imaging.RGB{}
	white = imaging.RGB{R: 255, G: 255, B: 255}
)

// luminance is the perceived brightness of c, weighting the squared 0-255
// channel values.
func luminance(c imaging.RGB) float64 {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return math.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
}

// BlackWhite turns every pixel pure white or pure black depending on whether
// its luminance is at or above the image's median luminance.
//
// The median is the element at index n/2 of the sorted luminances, which is
// the upper of the two middle values when n is even. Pixels equal to the
// median are white, so a uniform image becomes entirely white.
func BlackWhite(img imaging.Pixels) {
	width, height := img.Width(), img.Height()
	if width == 0 || height == 0 {
		return
	}

	lum := make([]float64, width*height)
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				lum[y*width+x] = luminance(img.At(x, y))
			}
		}
	})

	sorted := slices.Clone(lum)
	slices.Sort(sorted)
	median := sorted[len(sorted)/2]

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				if lum[y*width+x] < median {
					img.Set(x, y, black)
				} else {
					img.Set(x, y, white)
				}
			}
		}
	})
}
