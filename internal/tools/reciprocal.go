package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReciprocalTool handles reciprocal key requests
type ReciprocalTool struct {
	engine types.Engine
}

// NewReciprocalTool creates a new reciprocal tool
func NewReciprocalTool(engine types.Engine) *ReciprocalTool {
	return &ReciprocalTool{engine: engine}
}

// GetTool returns the MCP tool definition
func (t *ReciprocalTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolReciprocal,
		mcp.WithDescription("Press the 1/x key, replacing the displayed value with its reciprocal"),
	)
}

// Handle processes the tool request
func (t *ReciprocalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newStateResult(t.engine.Reciprocal())
}
