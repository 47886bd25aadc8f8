package imaging

import (
	"fmt"
	_ "image/gif" // Register GIF format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads and decodes an image file into a new Buffer.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF and WebP. EXIF
// orientation in JPEG files is applied while decoding.
//
// # Errors
//
// Any failure is returned as a *DecodeError: the file does not exist, cannot
// be read, or is not a valid image in a supported format.
func Load(path string) (*Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return FromImage(img), nil
}

// Save encodes the buffer in the named format and writes it to path.
//
// format is a file extension with or without the leading dot ("png", ".jpg",
// "jpeg", "gif", "bmp", "tif", "tiff"), matched case-insensitively.
//
// # Errors
//
// Any failure is returned as an *EncodeError: the format is not supported,
// the destination cannot be created, or encoding fails.
func Save(buf *Buffer, format, path string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return &EncodeError{Path: path, Format: format, Err: err}
	}

	out, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Format: format, Err: err}
	}

	if err := imaging.Encode(out, buf.Image(), f); err != nil {
		out.Close()
		return &EncodeError{Path: path, Format: format, Err: err}
	}
	if err := out.Close(); err != nil {
		return &EncodeError{Path: path, Format: format, Err: err}
	}
	return nil
}

// SaveAuto writes the buffer to path using the format implied by its extension.
func SaveAuto(buf *Buffer, path string) error {
	return Save(buf, filepath.Ext(path), path)
}

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded buffers keyed by their file path. Cached buffers
// are shared: callers that intend to modify a cached image must Clone it first.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*Buffer
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*Buffer),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
// Failed loads are not cached.
func (c *ImageCache) Load(path string) (*Buffer, error) {
	c.mu.RLock()
	if buf, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	buf, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*Buffer)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension ("png", "jpeg", ...)
	// or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	} else if strings.EqualFold(filepath.Ext(path), ".webp") {
		format = "webp"
	}

	return &ImageInfo{
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: buf.Width(), Height: buf.Height()}, nil
}
