package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputOperatorTool handles operator entry requests
type InputOperatorTool struct {
	engine types.Engine
}

// NewInputOperatorTool creates a new input operator tool
func NewInputOperatorTool(engine types.Engine) *InputOperatorTool {
	return &InputOperatorTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *InputOperatorTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolInputOperator,
		mcp.WithDescription("Press a binary operator key on the calculator. "+
			"If an operator is already pending, the pending computation is performed first."),
		mcp.WithString("operator", mcp.Required(), mcp.Description("The operator: one of + - * /")),
	)
}

// Handle processes the tool request
func (t *InputOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operator, err := parseOperator(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return newStateResult(t.engine.InputOperator(operator))
}
