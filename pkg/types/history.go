package types

// HistoryEntry represents one completed binary operation.
type HistoryEntry struct {
	Left     float64  `json:"left"`
	Operator Operator `json:"operator"`
	Right    float64  `json:"right"`
	Result   float64  `json:"result"`
}

// HistoryStore defines the persisted operation history interface.
type HistoryStore interface {
	// Load reads the persisted history once at start-up. A missing file
	// yields an empty history and a nil error.
	Load() error

	// Append inserts the newest entry, evicting the oldest beyond capacity,
	// and persists the retained set.
	Append(entry HistoryEntry) error

	// Clear empties the in-memory and on-disk history.
	Clear() error

	// Entries returns a most-recent-first copy of the retained entries.
	Entries() []HistoryEntry
}
