package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SquareTool handles square key requests
type SquareTool struct {
	engine types.Engine
}

// NewSquareTool creates a new square tool
func NewSquareTool(engine types.Engine) *SquareTool {
	return &SquareTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *SquareTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSquare,
		mcp.WithDescription("Press the x² key, replacing the displayed value with its square"),
	)
}

// Handle processes the tool request
func (t *SquareTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.Square())
}
