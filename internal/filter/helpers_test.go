package filter

import (
	"testing"

	"github.com/ironsheep/image-filters/internal/imaging"
)

// newBuffer builds a width×height buffer from row-major pixels.
func newBuffer(t *testing.T, width, height int, pixels ...imaging.RGB) *imaging.Buffer {
	t.Helper()
	if len(pixels) != width*height {
		t.Fatalf("newBuffer: got %d pixels for %dx%d", len(pixels), width, height)
	}
	buf := imaging.NewBuffer(width, height)
	for i, c := range pixels {
		buf.Set(i%width, i/width, c)
	}
	return buf
}

// uniform builds a width×height buffer filled with c.
func uniform(width, height int, c imaging.RGB) *imaging.Buffer {
	buf := imaging.NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, c)
		}
	}
	return buf
}

// pixelsOf returns the pixels of img in row-major order.
func pixelsOf(img imaging.Pixels) []imaging.RGB {
	out := make([]imaging.RGB, 0, img.Width()*img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out = append(out, img.At(x, y))
		}
	}
	return out
}

func rgb(r, g, b uint8) imaging.RGB {
	return imaging.RGB{R: r, G: g, B: b}
}
