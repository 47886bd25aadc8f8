// Package filter implements the image filters.
//
// Each filter is a plain function over imaging.Pixels:
//
//   - Grayscale, Invert, Sepia: per-pixel color maps
//   - BlackWhite: median-luminance threshold (two passes)
//   - Rotate: 90° clockwise, returns a new buffer
//   - SetHue, SetSaturation, SetLightness: overwrite one HSL channel
//   - AdjustHue, AdjustSaturation, AdjustLightness: shift one HSL channel
//   - Instagram: warm tone plus halo and grain overlays
//
// Per-pixel filters modify their argument in place and split rows across
// goroutines. Engine exposes the same filters by name for the console and the
// MCP server.
package filter
