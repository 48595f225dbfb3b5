package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

// Capacity is the maximum number of retained history entries.
const Capacity = 10

const fieldSeparator = "\t"

// Store persists a bounded log of completed operations to a single file.
//
// Entries are kept oldest-first in memory and on disk; the Entries view is
// most-recent-first. The full retained set is rewritten on every mutation.
type Store struct {
	path    string
	entries []types.HistoryEntry
}

var _ types.HistoryStore = &Store{}

// NewStore creates a new history store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted history. A missing file yields an empty history
// and a nil error; an unparseable record is skipped and logged, so a
// partially corrupt file truncates to its parseable records.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	s.entries = s.entries[:0]
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entry, err := parseRecord(line)
		if err != nil {
			log.Printf("Skipping corrupt history record: %v", err)
			continue
		}
		s.entries = append(s.entries, entry)
	}
	if len(s.entries) > Capacity {
		s.entries = s.entries[len(s.entries)-Capacity:]
	}
	return nil
}

// Append inserts the newest entry, evicts the oldest beyond capacity, and
// persists the retained set.
func (s *Store) Append(entry types.HistoryEntry) error {
	s.entries = append(s.entries, entry)
	if len(s.entries) > Capacity {
		s.entries = s.entries[len(s.entries)-Capacity:]
	}
	return s.persist()
}

// Clear empties the in-memory and on-disk history.
func (s *Store) Clear() error {
	s.entries = nil
	return s.persist()
}

// Entries returns a most-recent-first copy of the retained entries.
func (s *Store) Entries() []types.HistoryEntry {
	out := make([]types.HistoryEntry, len(s.entries))
	for i, entry := range s.entries {
		out[len(s.entries)-1-i] = entry
	}
	return out
}

// persist rewrites the full retained set, replacing prior file contents.
func (s *Store) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range s.entries {
		if _, err := w.WriteString(formatRecord(entry) + "\n"); err != nil {
			return fmt.Errorf("failed to write history record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush history file: %w", err)
	}
	return nil
}

// formatRecord serializes an entry as four tab-separated fields:
// left, operator symbol, right, result.
func formatRecord(entry types.HistoryEntry) string {
	return strings.Join([]string{
		formatFloat(entry.Left),
		entry.Operator.Symbol(),
		formatFloat(entry.Right),
		formatFloat(entry.Result),
	}, fieldSeparator)
}

// parseRecord deserializes a single history record line.
func parseRecord(line string) (types.HistoryEntry, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 4 {
		return types.HistoryEntry{}, fmt.Errorf("expected 4 fields, got %d: %q", len(fields), line)
	}

	left, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("invalid left operand %q: %v", fields[0], err)
	}
	op, err := types.ParseOperator(fields[1])
	if err != nil {
		return types.HistoryEntry{}, err
	}
	right, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("invalid right operand %q: %v", fields[2], err)
	}
	result, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("invalid result %q: %v", fields[3], err)
	}

	return types.HistoryEntry{Left: left, Operator: op, Right: right, Result: result}, nil
}

// formatFloat serializes a float so that it round-trips exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
