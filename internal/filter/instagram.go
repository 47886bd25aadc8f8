package filter

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-filters/internal/imaging"
)

// Overlay file names looked up by DirOverlays.
const (
	HaloFile  = "halo.png"
	GrainFile = "decorative_grain.png"
)

// Blend weights for the overlay passes: the share of the current pixel kept.
const (
	haloKeep  = 0.65
	grainKeep = 0.95
)

// OverlaySource supplies the read-only overlay images used by Instagram.
type OverlaySource interface {
	Halo() (imaging.Pixels, error)
	Grain() (imaging.Pixels, error)
}

// DirOverlays reads overlays from a resource directory. Decoded overlays are
// cached, so repeated Instagram calls read each file once.
type DirOverlays struct {
	dir   string
	cache *imaging.ImageCache
}

// NewDirOverlays returns an OverlaySource reading HaloFile and GrainFile from dir.
func NewDirOverlays(dir string) *DirOverlays {
	return &DirOverlays{dir: dir, cache: imaging.NewImageCache()}
}

// Dir returns the resource directory.
func (o *DirOverlays) Dir() string { return o.dir }

// Halo loads the vignette overlay.
func (o *DirOverlays) Halo() (imaging.Pixels, error) {
	return o.cache.Load(filepath.Join(o.dir, HaloFile))
}

// Grain loads the film grain overlay.
func (o *DirOverlays) Grain() (imaging.Pixels, error) {
	return o.cache.Load(filepath.Join(o.dir, GrainFile))
}

// ErrNoOverlays is returned by Instagram when no overlay source is configured.
var ErrNoOverlays = errors.New("no overlay source configured")

// Instagram applies a warm vintage look in three passes:
//  1. Warm tone: red ×1.2, blue ÷1.5, green unchanged
//  2. Vignette: 65% image blended with 35% of the halo overlay
//  3. Grain: 95% image blended with 5% of the grain overlay
//
// Overlays are stretched or shrunk to the image size with nearest-neighbour
// sampling, so images of any size are accepted.
//
// Both overlays are resolved before the first pass runs. When either cannot
// be loaded the error (a *imaging.DecodeError for missing or corrupt files)
// is returned and img is left untouched.
func Instagram(img imaging.Pixels, overlays OverlaySource) error {
	if overlays == nil {
		return ErrNoOverlays
	}
	halo, err := overlays.Halo()
	if err != nil {
		return fmt.Errorf("failed to load halo overlay: %w", err)
	}
	grain, err := overlays.Grain()
	if err != nil {
		return fmt.Errorf("failed to load grain overlay: %w", err)
	}

	mapPixels(img, warm)
	blendOverlay(img, halo, haloKeep)
	blendOverlay(img, grain, grainKeep)
	return nil
}

func warm(c imaging.RGB) imaging.RGB {
	return imaging.NewRGB(
		int(float64(c.R)*1.2),
		int(c.G),
		int(float64(c.B)/1.5),
	)
}

// blendOverlay mixes keep of each pixel with 1-keep of the overlay pixel at
// the proportionally scaled position.
func blendOverlay(img, overlay imaging.Pixels, keep float64) {
	width, height := img.Width(), img.Height()
	ow, oh := overlay.Width(), overlay.Height()
	mix := func(a, b uint8) int {
		return int(keep*float64(a) + (1-keep)*float64(b))
	}

	parallel.Line(height, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < width; j++ {
				o := overlay.At(j*ow/width, i*oh/height)
				c := img.At(j, i)
				img.Set(j, i, imaging.NewRGB(mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B)))
			}
		}
	})
}
