package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputDecimalTool handles decimal point entry requests
type InputDecimalTool struct {
	engine types.Engine
}

// NewInputDecimalTool creates a new input decimal tool
func NewInputDecimalTool(engine types.Engine) *InputDecimalTool {
	return &InputDecimalTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *InputDecimalTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolInputDecimal,
		mcp.WithDescription("Press the decimal point key on the calculator"),
	)
}

// Handle processes the tool request
func (t *InputDecimalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.InputDecimal())
}
