package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PercentTool handles percent key requests
type PercentTool struct {
	engine types.Engine
}

// NewPercentTool creates a new percent tool
func NewPercentTool(engine types.Engine) *PercentTool {
	return &PercentTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *PercentTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPercent,
		mcp.WithDescription("Press the % key. With a pending operator the display becomes "+
			"that percentage of the stored operand; otherwise the display is divided by 100."),
	)
}

// Handle processes the tool request
func (t *PercentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.Percent())
}
