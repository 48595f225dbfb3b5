package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearTool handles clear key requests
type ClearTool struct {
	engine types.Engine
}

// NewClearTool creates a new clear tool
func NewClearTool(engine types.Engine) *ClearTool {
	return &ClearTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClear,
		mcp.WithDescription("Press the C key, resetting the calculator to its initial state "+
			"and clearing any error"),
	)
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.Clear())
}
