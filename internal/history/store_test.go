package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.tsv")
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(tempPath(t))
	err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, store.Entries())
}

func TestStore_AppendAndEntries(t *testing.T) {
	store := NewStore(tempPath(t))

	require.NoError(t, store.Append(types.HistoryEntry{Left: 3, Operator: types.Add, Right: 5, Result: 8}))
	require.NoError(t, store.Append(types.HistoryEntry{Left: 10, Operator: types.Divide, Right: 4, Result: 2.5}))

	entries := store.Entries()
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, types.HistoryEntry{Left: 10, Operator: types.Divide, Right: 4, Result: 2.5}, entries[0])
	assert.Equal(t, types.HistoryEntry{Left: 3, Operator: types.Add, Right: 5, Result: 8}, entries[1])
}

func TestStore_EntriesReturnsCopy(t *testing.T) {
	store := NewStore(tempPath(t))
	require.NoError(t, store.Append(types.HistoryEntry{Left: 1, Operator: types.Add, Right: 1, Result: 2}))

	entries := store.Entries()
	entries[0].Result = 99

	assert.Equal(t, float64(2), store.Entries()[0].Result)
}

func TestStore_CapacityEvictsOldest(t *testing.T) {
	store := NewStore(tempPath(t))

	for i := 1; i <= Capacity+1; i++ {
		entry := types.HistoryEntry{Left: float64(i), Operator: types.Add, Right: 1, Result: float64(i + 1)}
		require.NoError(t, store.Append(entry))
	}

	entries := store.Entries()
	require.Len(t, entries, Capacity)

	// The first append (left operand 1) was evicted.
	assert.Equal(t, float64(Capacity+1), entries[0].Left)
	assert.Equal(t, float64(2), entries[len(entries)-1].Left)
}

func TestStore_RoundTrip(t *testing.T) {
	path := tempPath(t)
	store := NewStore(path)

	appended := []types.HistoryEntry{
		{Left: 3, Operator: types.Add, Right: 5, Result: 8},
		{Left: 1, Operator: types.Divide, Right: 3, Result: 1.0 / 3.0},
		{Left: -2.5, Operator: types.Multiply, Right: 4, Result: -10},
		{Left: 1e20, Operator: types.Subtract, Right: 1, Result: 1e20 - 1},
	}
	for _, entry := range appended {
		require.NoError(t, store.Append(entry))
	}

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, store.Entries(), reloaded.Entries())
}

func TestStore_LoadSkipsCorruptRecords(t *testing.T) {
	path := tempPath(t)
	content := "3\t+\t5\t8\n" +
		"not a record\n" +
		"1\t?\t2\t3\n" +
		"abc\t+\t2\t3\n" +
		"10\t÷\t4\t2.5\n" +
		"1\t+\t2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewStore(path)
	require.NoError(t, store.Load())

	entries := store.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, types.HistoryEntry{Left: 10, Operator: types.Divide, Right: 4, Result: 2.5}, entries[0])
	assert.Equal(t, types.HistoryEntry{Left: 3, Operator: types.Add, Right: 5, Result: 8}, entries[1])
}

func TestStore_LoadKeepsNewestWhenOverCapacity(t *testing.T) {
	path := tempPath(t)
	var content string
	for i := 1; i <= Capacity+5; i++ {
		content += fmt.Sprintf("%d\t+\t1\t%d\n", i, i+1)
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewStore(path)
	require.NoError(t, store.Load())

	entries := store.Entries()
	require.Len(t, entries, Capacity)
	assert.Equal(t, float64(Capacity+5), entries[0].Left)
}

func TestStore_Clear(t *testing.T) {
	path := tempPath(t)
	store := NewStore(path)
	require.NoError(t, store.Append(types.HistoryEntry{Left: 3, Operator: types.Add, Right: 5, Result: 8}))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Entries())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.Empty(t, reloaded.Entries())
}

func TestStore_PersistCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.tsv")
	store := NewStore(path)

	require.NoError(t, store.Append(types.HistoryEntry{Left: 1, Operator: types.Add, Right: 2, Result: 3}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
