package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputDigitTool handles digit entry requests
type InputDigitTool struct {
	engine types.Engine
}

// NewInputDigitTool creates a new input digit tool
func NewInputDigitTool(engine types.Engine) *InputDigitTool {
	return &InputDigitTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *InputDigitTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolInputDigit,
		mcp.WithDescription("Press a digit key on the calculator"),
		mcp.WithString("digit", mcp.Required(), mcp.Description("A single digit, 0 through 9")),
	)
}

// Handle processes the tool request
func (t *InputDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digit, err := parseDigit(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return newStateResult(t.engine.InputDigit(digit))
}
