package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// BackspaceTool handles backspace key requests
type BackspaceTool struct {
	engine types.Engine
}

// NewBackspaceTool creates a new backspace tool
func NewBackspaceTool(engine types.Engine) *BackspaceTool {
	return &BackspaceTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *BackspaceTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolBackspace,
		mcp.WithDescription("Press the backspace key, removing the last character of the display"),
	)
}

// Handle processes the tool request
func (t *BackspaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.Backspace())
}
