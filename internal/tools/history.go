package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool handles history listing requests
type HistoryTool struct {
	store types.HistoryStore
}

// NewHistoryTool creates a new history tool
func NewHistoryTool(store types.HistoryStore) *HistoryTool {
	return &HistoryTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *HistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolHistory,
		mcp.WithDescription("List the completed operations, most recent first"),
	)
}

// Handle processes the tool request
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.NewHistoryListResult(t.store.Entries())
	if toolResult.Count == 0 {
		toolResult.Message = "No history yet."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d completed operation(s).", toolResult.Count)
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
