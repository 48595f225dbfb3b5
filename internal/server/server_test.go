package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalcServer(t *testing.T) {
	config := &types.Config{
		HistoryPath: filepath.Join(t.TempDir(), "history.tsv"),
		LogLevel:    "info",
	}

	s := NewCalcServer(config)
	require.NotNil(t, s.mcpServer)
	require.NotNil(t, s.engine)
	require.NotNil(t, s.store)

	// Registration must not panic with a fresh engine and store.
	s.registerTools()
}

func TestCalcServer_RestartReloadsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.tsv")
	config := &types.Config{HistoryPath: path}

	s := NewCalcServer(config)
	require.NoError(t, s.store.Load())

	s.engine.InputDigit('3')
	s.engine.InputOperator(types.Add)
	s.engine.InputDigit('5')
	state := s.engine.Compute()
	require.Equal(t, "8", state.Display)

	// A new server instance over the same path sees the persisted entries.
	restarted := NewCalcServer(config)
	require.NoError(t, restarted.store.Load())

	entries := restarted.store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, types.HistoryEntry{Left: 3, Operator: types.Add, Right: 5, Result: 8}, entries[0])
}

func TestCalcServer_LoadToleratesCorruptHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.tsv")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n3\t+\t5\t8\n"), 0o644))

	s := NewCalcServer(&types.Config{HistoryPath: path})
	require.NoError(t, s.store.Load())

	entries := s.store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, types.HistoryEntry{Left: 3, Operator: types.Add, Right: 5, Result: 8}, entries[0])
}
