// Package server exposes the filter engine as an MCP (Model Context Protocol)
// tool server.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load an image and report its metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get the color at a pixel as hex, RGB and HSL
//   - image_list_filters: Enumerate filters and their value ranges
//   - image_filter: Apply a filter, saving to output_path or returning base64 PNG
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server. Filters
// run on a clone of the cached image, so repeated image_filter calls on the
// same path always start from the file contents. Writing to output_path
// evicts that path from the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(filter.NewEngine(filter.NewDirOverlays("resources")))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
