package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ComputeTool handles equals key requests
type ComputeTool struct {
	engine types.Engine
}

// NewComputeTool creates a new compute tool
func NewComputeTool(engine types.Engine) *ComputeTool {
	return &ComputeTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *ComputeTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCompute,
		mcp.WithDescription("Press the equals key, applying the pending operator "+
			"to the stored operand and the current display value"),
	)
}

// Handle processes the tool request
func (t *ComputeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.Compute())
}
