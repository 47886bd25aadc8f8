package filter

import "github.com/ironsheep/image-filters/internal/imaging"

// Rotate returns a new buffer holding src turned 90 degrees clockwise.
// The result is src.Height() wide and src.Width() tall; src is not modified.
func Rotate(src imaging.Pixels) *imaging.Buffer {
	srcWidth, srcHeight := src.Width(), src.Height()
	dst := imaging.NewBuffer(srcHeight, srcWidth)
	for i := 0; i < srcWidth; i++ {
		for j := 0; j < srcHeight; j++ {
			dst.Set(j, i, src.At(i, srcHeight-j-1))
		}
	}
	return dst
}
