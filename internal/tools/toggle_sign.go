package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToggleSignTool handles sign toggle key requests
type ToggleSignTool struct {
	engine types.Engine
}

// NewToggleSignTool creates a new toggle sign tool
func NewToggleSignTool(engine types.Engine) *ToggleSignTool {
	return &ToggleSignTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *ToggleSignTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolToggleSign,
		mcp.WithDescription("Press the +/- key, negating the displayed value"),
	)
}

// Handle processes the tool request
func (t *ToggleSignTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.ToggleSign())
}
