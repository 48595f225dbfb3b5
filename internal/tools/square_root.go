package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SquareRootTool handles square root key requests
type SquareRootTool struct {
	engine types.Engine
}

// NewSquareRootTool creates a new square root tool
func NewSquareRootTool(engine types.Engine) *SquareRootTool {
	return &SquareRootTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *SquareRootTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSquareRoot,
		mcp.WithDescription("Press the √x key, replacing the displayed value with its square root"),
	)
}

// Handle processes the tool request
func (t *SquareRootTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.SquareRoot())
}
