// Package server implements the MCP (Model Context Protocol) server for the image editor.
//
// The server owns one edit session and exposes it as MCP tools, so an MCP
// client (Claude Desktop or any other JSON-RPC 2.0 client) can load an image,
// filter it, step through history and export the result.
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
// Session:
//   - editor_load: Load an image from a path, base64 data or a data URL
//   - editor_status: State, size and undo/redo depth
//
// Editing:
//   - editor_apply_filter: grayscale, invert or brightness(delta)
//   - editor_undo: Restore the pre-edit image
//   - editor_redo: Step forward through undone history
//
// Output:
//   - editor_export: Encode as PNG, JPEG or BMP, inline or to a file
//
// Inspection:
//   - editor_sample_color: Color of one pixel
//   - editor_dominant_colors: Most common colors
//
// # Session Model
//
// The displayed image lives on an in-memory canvas surface that is the single
// source of truth. Requests are read and handled one at a time, which is what
// keeps session operations from overlapping; no other locking is involved.
// When stdin closes the session is closed and its history dropped.
//
// Undo and redo on an empty history are not errors: the result reports
// "applied": false.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//     (-32700 parse error, -32601 unknown method, -32602 bad params)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string, e.g.
//     "no frame loaded" when editing before editor_load)
//
// # Usage
//
//	srv, err := server.New(config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
