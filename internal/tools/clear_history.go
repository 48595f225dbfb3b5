package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearHistoryTool handles history clearing requests
type ClearHistoryTool struct {
	store types.HistoryStore
}

// NewClearHistoryTool creates a new clear history tool
func NewClearHistoryTool(store types.HistoryStore) *ClearHistoryTool {
	return &ClearHistoryTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Empty the operation history, in memory and on disk"),
	)
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.store.Clear(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear history: %v", err)), nil
	}
	return mcp.NewToolResultText("History cleared."), nil
}
