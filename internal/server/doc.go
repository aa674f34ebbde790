// Package server implements the MCP (Model Context Protocol) server that
// exposes the tiny tools.
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
// Text & Dev:
//   - json_format: Pretty-print, minify or validate JSON
//   - base64: Base64 encode and decode
//   - url_encode: URI component encode and decode
//   - hash_generate: MD5, SHA-1, SHA-256, SHA-512 and SHA3-256 digests
//   - markdown_preview: Markdown to HTML or terminal text
//   - css_minify: CSS minification with size savings
//   - csv_to_json: CSV to a JSON array
//
// UI & Design:
//   - color_palette: Eight color palette from a base color
//   - color_convert: Hex, RGB and HSL conversion
//   - css_gradient: CSS gradients with an optional PNG preview
//
// File & Misc:
//   - uuid_generate: Version 4 UUIDs
//   - password_generate: Random passwords with a strength score
//   - qr_generate: QR code PNG
//   - url_shorten: Simulated short links with a bounded history
//
// # Error Handling
//
// Failures are returned as JSON-RPC error responses with:
//   - code: -32602 for bad arguments, -32000 for tool failures, -32601 for
//     unknown methods, -32700 for unparseable lines
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(cfg, server.WithVersion(version))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
