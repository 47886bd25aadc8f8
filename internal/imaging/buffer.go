package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Pixels is a width×height grid of RGB pixels addressed from the top-left.
//
// Filters accept any Pixels implementation. Implementations must tolerate
// concurrent Set calls on distinct coordinates, since per-pixel filters split
// their work across goroutines by rows.
type Pixels interface {
	Width() int
	Height() int
	At(x, y int) RGB
	Set(x, y int, c RGB)
}

// Buffer is the in-memory Pixels implementation backed by an *image.NRGBA.
//
// Alpha is not modelled: every pixel written through Set is fully opaque, and
// alpha in decoded sources is ignored on read.
//
// Coordinates outside the buffer follow the standard image package: At returns
// black and Set does nothing.
type Buffer struct {
	img *image.NRGBA
}

var _ Pixels = (*Buffer)(nil)

// NewBuffer returns a width×height buffer with every pixel black.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{img: imaging.New(max(width, 0), max(height, 0), color.NRGBA{A: 0xff})}
}

// FromImage copies any image.Image into a new Buffer whose origin is (0, 0).
func FromImage(img image.Image) *Buffer {
	return &Buffer{img: imaging.Clone(img)}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// At returns the pixel at (x, y), or black when (x, y) is out of bounds.
func (b *Buffer) At(x, y int) RGB {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return RGB{}
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}

// Set writes the pixel at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{img: imaging.Clone(b.img)}
}

// Image exposes the buffer as a standard image for encoding or display.
// The returned image shares memory with the buffer.
func (b *Buffer) Image() image.Image {
	return b.img
}

// Gradient builds a width×height synthetic test image: red and green ramp
// with the linear pixel index, blue fades from the top-left corner.
func Gradient(width, height int) *Buffer {
	buf := NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := (y*width + x) / 256
			g := (y + x*height) / 256
			b := 255 - (y*128/height + x*128/width)
			buf.Set(x, y, NewRGB(r, g, b))
		}
	}
	return buf
}
