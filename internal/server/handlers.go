package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_load", "editor_undo").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the session or imaging function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session
	case "editor_load":
		return s.handleEditorLoad(args)
	case "editor_status":
		return s.session.Status(), nil

	// Editing
	case "editor_apply_filter":
		return s.handleEditorApplyFilter(args)
	case "editor_undo":
		return s.handleEditorStep(s.session.Undo)
	case "editor_redo":
		return s.handleEditorStep(s.session.Redo)

	// Output
	case "editor_export":
		return s.handleEditorExport(args)

	// Inspection
	case "editor_sample_color":
		return s.handleEditorSampleColor(args)
	case "editor_dominant_colors":
		return s.handleEditorDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating missing arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Session Handlers ===

type editorLoadArgs struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

type editorLoadResult struct {
	Source *imaging.SourceInfo `json:"source"`
	Status editor.Status       `json:"status"`
}

func (s *Server) handleEditorLoad(args json.RawMessage) (interface{}, error) {
	var a editorLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path != "" && a.Data != "" {
		return nil, fmt.Errorf("give either path or data, not both")
	}

	// Decode fully before touching the session so a bad image changes nothing.
	frame, info, err := s.loader.Load(imaging.Source{Path: a.Path, Data: a.Data})
	if err != nil {
		return nil, err
	}
	if err := s.session.Load(frame); err != nil {
		return nil, err
	}
	return &editorLoadResult{Source: info, Status: s.session.Status()}, nil
}

// === Editing Handlers ===

type editorApplyFilterArgs struct {
	Filter string `json:"filter"`
	Delta  int    `json:"delta"`
}

type editorApplyFilterResult struct {
	Filter string        `json:"filter"`
	Delta  int           `json:"delta,omitempty"`
	Status editor.Status `json:"status"`
}

func (s *Server) handleEditorApplyFilter(args json.RawMessage) (interface{}, error) {
	var a editorApplyFilterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fn, err := editor.FilterByName(a.Filter, a.Delta)
	if err != nil {
		return nil, err
	}
	if err := s.session.ApplyFilter(fn); err != nil {
		return nil, err
	}

	res := &editorApplyFilterResult{Filter: a.Filter, Status: s.session.Status()}
	if a.Filter == editor.FilterBrightness {
		res.Delta = a.Delta
	}
	return res, nil
}

type editorStepResult struct {
	// Applied is false when there was no history in that direction.
	Applied bool          `json:"applied"`
	Status  editor.Status `json:"status"`
}

func (s *Server) handleEditorStep(step func() (bool, error)) (interface{}, error) {
	applied, err := step()
	if err != nil {
		return nil, err
	}
	return &editorStepResult{Applied: applied, Status: s.session.Status()}, nil
}

// === Output Handlers ===

type editorExportArgs struct {
	Format  string  `json:"format"`
	Quality int     `json:"quality"`
	Scale   float64 `json:"scale"`
	Path    string  `json:"path"`
}

func (s *Server) handleEditorExport(args json.RawMessage) (interface{}, error) {
	var a editorExportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Quality == 0 {
		a.Quality = s.cfg.JPEGQuality
	}

	frame, err := s.session.Snapshot()
	if err != nil {
		return nil, err
	}

	opts := imaging.ExportOptions{Format: a.Format, Quality: a.Quality, Scale: a.Scale}
	if a.Path != "" {
		return imaging.SaveFile(frame, a.Path, opts)
	}
	if opts.Format == "" {
		opts.Format = s.cfg.ExportFormat
	}
	return imaging.Export(frame, opts)
}

// === Inspection Handlers ===

type editorSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleEditorSampleColor(args json.RawMessage) (interface{}, error) {
	var a editorSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.session.Snapshot()
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(frame, a.X, a.Y)
}

type editorDominantColorsArgs struct {
	Count int `json:"count"`
}

func (s *Server) handleEditorDominantColors(args json.RawMessage) (interface{}, error) {
	var a editorDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	frame, err := s.session.Snapshot()
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(frame, a.Count)
}
