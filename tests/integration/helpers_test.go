// Package integration provides shared test helpers for integration tests.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/datagrid/internal/history"
	"github.com/mesh-intelligence/datagrid/internal/source"
	"github.com/mesh-intelligence/datagrid/internal/table"
)

// writeCSV writes contents to a fresh temp file and returns its path.
func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// openSession loads a file into a store with a fresh history manager,
// the way the edit command wires an editing session.
func openSession(t *testing.T, path string) (*table.Store, *history.Manager) {
	t.Helper()
	ds, err := source.Load(path)
	require.NoError(t, err, "Load must succeed")

	store := table.NewStore()
	require.NoError(t, store.Replace(ds))
	return store, history.NewManager(store)
}

// cellText returns the display form of a cell or fails the test.
func cellText(t *testing.T, s *table.Store, row, col int) string {
	t.Helper()
	v, err := s.Get(row, col)
	require.NoError(t, err)
	return v.String()
}

// edit applies a cell edit through the store and records it.
func edit(t *testing.T, s *table.Store, h *history.Manager, row, col int, raw string) {
	t.Helper()
	cmd, err := s.SetCell(row, col, raw)
	require.NoError(t, err, "SetCell(%d, %d, %q)", row, col, raw)
	h.Append(cmd)
}
