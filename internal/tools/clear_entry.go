package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearEntryTool handles clear entry key requests
type ClearEntryTool struct {
	engine types.Engine
}

// NewClearEntryTool creates a new clear entry tool
func NewClearEntryTool(engine types.Engine) *ClearEntryTool {
	return &ClearEntryTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *ClearEntryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClearEntry,
		mcp.WithDescription("Press the CE key, resetting only the display "+
			"and preserving any pending operator"),
	)
}

// Handle processes the tool request
func (t *ClearEntryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.ClearEntry())
}
