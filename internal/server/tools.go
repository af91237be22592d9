package server

import "github.com/ironsheep/image-editor-mcp/internal/editor"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session
		{
			Name:        "editor_load",
			Description: "Load an image into the editor, replacing what is displayed. Give either a file path or inline base64 / data URL. Records a history boundary; pending redo steps are discarded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, TIFF, WebP)",
					},
					"data": map[string]interface{}{
						"type":        "string",
						"description": "Base64 image bytes or a data URL (data:image/png;base64,...)",
					},
				},
			},
		},
		{
			Name:        "editor_status",
			Description: "Report the editor state (empty or ready), image size, and how many undo and redo steps are available.",
			InputSchema: noArgsSchema(),
		},

		// Editing
		{
			Name:        "editor_apply_filter",
			Description: "Apply a pixel filter to the displayed image. The image as it was before the filter becomes an undo step.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        editor.FilterNames(),
						"description": "grayscale (BT.709 luma), invert (RGB negative) or brightness (add delta)",
					},
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Brightness change per channel, may be negative. Results are clamped to 0-255. Default 0",
						"default":     0,
					},
				},
				"required": []string{"filter"},
			},
		},
		{
			Name:        "editor_undo",
			Description: "Restore the image as it was before the most recent edit. Does nothing when there is no earlier state.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "editor_redo",
			Description: "Step forward through undone history. Redisplays the most recently undone snapshot, which is the image from before that edit, not the filtered result. Does nothing when there is nothing to redo.",
			InputSchema: noArgsSchema(),
		},

		// Output
		{
			Name:        "editor_export",
			Description: "Encode the displayed image. Returns base64 and a data URL, or writes a file when path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpeg", "bmp"},
						"description": "Output format. Defaults to the server's configured format, or the file extension when path is given",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 0.5 for a half-size preview). Default 1.0",
						"default":     1.0,
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Write the image to this absolute path instead of returning it inline",
					},
				},
			},
		},

		// Inspection
		{
			Name:        "editor_sample_color",
			Description: "Get the exact color of one pixel of the displayed image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "editor_dominant_colors",
			Description: "List the most common colors of the displayed image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
