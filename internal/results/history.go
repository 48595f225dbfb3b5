package results

import "github.com/averycrespi/calc-mcp/pkg/types"

// HistoryListResult represents the JSON structure of the history tool result.
type HistoryListResult struct {
	Count   int                  `json:"count"`
	Entries []HistoryEntryResult `json:"entries"`
	Message string               `json:"message,omitempty"`
}

// HistoryEntryResult represents a single completed operation in the results,
// most recent first.
type HistoryEntryResult struct {
	Left     float64 `json:"left"`
	Operator string  `json:"operator"`
	Right    float64 `json:"right"`
	Result   float64 `json:"result"`
}

// NewHistoryEntryResult creates a HistoryEntryResult from a history entry.
func NewHistoryEntryResult(entry types.HistoryEntry) HistoryEntryResult {
	return HistoryEntryResult{
		Left:     entry.Left,
		Operator: entry.Operator.Symbol(),
		Right:    entry.Right,
		Result:   entry.Result,
	}
}

// NewHistoryListResult creates a HistoryListResult from a most-recent-first
// entry list.
func NewHistoryListResult(entries []types.HistoryEntry) HistoryListResult {
	result := HistoryListResult{
		Count:   len(entries),
		Entries: make([]HistoryEntryResult, 0, len(entries)),
	}
	for _, entry := range entries {
		result.Entries = append(result.Entries, NewHistoryEntryResult(entry))
	}
	return result
}
