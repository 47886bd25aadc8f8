// Package preview renders a scaled snapshot of the working image after each
// change so it can be watched from an image viewer.
package preview

import (
	"github.com/disintegration/imaging"

	filters "github.com/ironsheep/image-filters/internal/imaging"
)

// DefaultHeight is the preview height in pixels. Width follows the aspect ratio.
const DefaultHeight = 800

// Renderer displays the current image.
type Renderer interface {
	Render(buf *filters.Buffer) error
}

// Nop discards every render.
type Nop struct{}

// Render does nothing.
func (Nop) Render(*filters.Buffer) error { return nil }

// FileRenderer writes each render to a PNG file, scaled to a fixed height.
type FileRenderer struct {
	Path   string
	Height int
}

// NewFileRenderer returns a renderer writing DefaultHeight previews to path.
func NewFileRenderer(path string) *FileRenderer {
	return &FileRenderer{Path: path, Height: DefaultHeight}
}

// Size returns the preview dimensions for a width×height image.
// Images with no pixels have no preview.
func (r *FileRenderer) Size(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	h := r.Height
	if h <= 0 {
		h = DefaultHeight
	}
	return max(h*width/height, 1), h
}

// Render scales buf and writes it to r.Path as PNG. Empty images are skipped.
func (r *FileRenderer) Render(buf *filters.Buffer) error {
	w, h := r.Size(buf.Width(), buf.Height())
	if w == 0 {
		return nil
	}

	scaled := imaging.Resize(buf.Image(), w, h, imaging.Lanczos)
	return filters.Save(filters.FromImage(scaled), "png", r.Path)
}
