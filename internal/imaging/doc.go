// Package imaging provides the pixel model and raster I/O used by the filters.
//
// It defines the RGB and HSL pixel value types, the conversion between them,
// and Buffer, an in-memory grid of RGB pixels that is decoded from and encoded
// to common raster file formats. Coordinates follow the image package: (0,0)
// is the top-left corner, X increases rightward and Y increases downward.
//
// # Clamping
//
// Pixel values never hold out-of-range channels. Constructors and setters
// saturate their inputs instead of failing:
//   - RGB channels: [0, 255]
//   - HSL hue: [0, 360] degrees (saturating, so 400 becomes 360)
//   - HSL saturation and lightness: [0, 1]
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. A Buffer may be written concurrently
// at distinct coordinates; anything else must be synchronized by the caller.
//
// # Error Handling
//
// Load returns *DecodeError and Save returns *EncodeError; both wrap the
// underlying cause and can be matched with errors.As.
package imaging
