// Package table implements the in-memory tabular store the editing
// surface mutates and renders. Every user-facing mutation returns a
// history.Command describing itself; the silent counterparts used by
// undo/redo replay live on the same type and share the mutation and
// notification paths.
package table

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mesh-intelligence/datagrid/internal/history"
	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// Observer receives change notifications from a Store. Notifications
// are delivered synchronously, before the mutating method returns. A
// Reset invalidates any cached row or column counts.
type Observer interface {
	CellChanged(row, col int)
	RowsInserted(start, count int)
	RowsRemoved(start, count int)
	Reset()
}

// Store holds the current dataset: ordered named columns with an
// established scalar kind, and ordered rows of values. Column order
// and identity are stable across edits; only explicit row operations
// change the row set.
type Store struct {
	mu        sync.RWMutex
	columns   []types.Column
	rows      [][]types.Value
	observers []Observer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers an observer for change notifications.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// RowCount returns the current number of rows.
func (s *Store) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// ColumnCount returns the current number of columns.
func (s *Store) ColumnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.columns)
}

// Columns returns a copy of the column definitions.
func (s *Store) Columns() []types.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cols := make([]types.Column, len(s.columns))
	copy(cols, s.columns)
	return cols
}

// ColumnName returns the name of the given column, or the empty string
// when the index is out of range.
func (s *Store) ColumnName(col int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if col < 0 || col >= len(s.columns) {
		return ""
	}
	return s.columns[col].Name
}

// Get returns the value at (row, col). Returns ErrOutOfRange when the
// indices exceed current bounds.
func (s *Store) Get(row, col int) (types.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkBounds(row, col); err != nil {
		return types.Null(), err
	}
	return s.rows[row][col], nil
}

// SetCell coerces raw input to the column's established kind and
// overwrites the cell. On coercion failure the store is left
// unmodified and no command is produced. On success the returned
// EditCell command captures the old and new value.
func (s *Store) SetCell(row, col int, raw string) (history.Command, error) {
	s.mu.Lock()
	if err := s.checkBounds(row, col); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	v, err := types.Coerce(raw, s.columns[col].Kind)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cmd := &history.EditCell{
		Row:     row,
		Col:     col,
		ColName: s.columns[col].Name,
		Old:     s.rows[row][col],
		New:     v,
	}
	s.rows[row][col] = v
	s.mu.Unlock()

	s.notify(func(o Observer) { o.CellChanged(row, col) })
	return cmd, nil
}

// ApplyCell overwrites a cell with an already-validated value. Used
// exclusively by undo/redo replay; no command is produced and coercion
// is bypassed.
func (s *Store) ApplyCell(row, col int, v types.Value) error {
	s.mu.Lock()
	if err := s.checkBounds(row, col); err != nil {
		s.mu.Unlock()
		return err
	}
	s.rows[row][col] = v
	s.mu.Unlock()

	s.notify(func(o Observer) { o.CellChanged(row, col) })
	return nil
}

// AddRow appends an all-null row and returns the describing command.
func (s *Store) AddRow() history.Command {
	row := s.AppendRow()
	return &history.AddRow{Row: row}
}

// AppendRow appends an all-null row without producing a command and
// returns its index.
func (s *Store) AppendRow() int {
	s.mu.Lock()
	row := make([]types.Value, len(s.columns))
	s.rows = append(s.rows, row)
	idx := len(s.rows) - 1
	s.mu.Unlock()

	s.notify(func(o Observer) { o.RowsInserted(idx, 1) })
	return idx
}

// DeleteRow removes the row and returns a command carrying a full
// snapshot of its values. Subsequent rows are renumbered contiguously.
func (s *Store) DeleteRow(row int) (history.Command, error) {
	snapshot, err := s.RemoveRow(row)
	if err != nil {
		return nil, err
	}
	return &history.DeleteRow{Row: row, Snapshot: snapshot}, nil
}

// RemoveRow deletes a row without producing a command and returns a
// snapshot of its values.
func (s *Store) RemoveRow(row int) ([]types.Value, error) {
	s.mu.Lock()
	if row < 0 || row >= len(s.rows) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: row %d of %d", types.ErrOutOfRange, row, len(s.rows))
	}
	snapshot := s.rows[row]
	s.rows = append(s.rows[:row], s.rows[row+1:]...)
	s.mu.Unlock()

	s.notify(func(o Observer) { o.RowsRemoved(row, 1) })
	return snapshot, nil
}

// InsertRow reinserts a previously removed row at the given index.
// Used exclusively by undo replay; no command is produced.
func (s *Store) InsertRow(row int, vals []types.Value) error {
	s.mu.Lock()
	if row < 0 || row > len(s.rows) {
		s.mu.Unlock()
		return fmt.Errorf("%w: insert at row %d of %d", types.ErrOutOfRange, row, len(s.rows))
	}
	if len(vals) != len(s.columns) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d values for %d columns", types.ErrRowWidth, len(vals), len(s.columns))
	}
	cp := make([]types.Value, len(vals))
	copy(cp, vals)
	s.rows = append(s.rows, nil)
	copy(s.rows[row+1:], s.rows[row:])
	s.rows[row] = cp
	s.mu.Unlock()

	s.notify(func(o Observer) { o.RowsInserted(row, 1) })
	return nil
}

// Replace swaps in a whole new dataset. History is not touched here;
// the caller clears it after a successful replace.
func (s *Store) Replace(ds types.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	cp := ds.Clone()

	s.mu.Lock()
	s.columns = cp.Columns
	s.rows = cp.Rows
	s.mu.Unlock()

	s.notify(func(o Observer) { o.Reset() })
	return nil
}

// Snapshot returns a deep copy of the current contents for export.
func (s *Store) Snapshot() types.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.Dataset{Columns: s.columns, Rows: s.rows}.Clone()
}

// Find returns the position of the first cell whose display form
// contains query, case-insensitively, scanning in row-major order.
func (s *Store) Find(query string) (row, col int, ok bool) {
	return s.FindFrom(query, 0, -1)
}

// FindFrom returns the next matching cell strictly after (afterRow,
// afterCol) in row-major order, wrapping around to the start. Pass
// afterCol -1 to include the first cell of afterRow in the scan.
func (s *Store) FindFrom(query string, afterRow, afterCol int) (row, col int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.rows) * len(s.columns)
	if total == 0 {
		return 0, 0, false
	}
	start := afterRow*len(s.columns) + afterCol + 1
	if start < 0 || start >= total {
		start = 0
	}
	for i := 0; i < total; i++ {
		pos := (start + i) % total
		r, c := pos/len(s.columns), pos%len(s.columns)
		if strings.Contains(strings.ToLower(s.rows[r][c].String()), needle) {
			return r, c, true
		}
	}
	return 0, 0, false
}

// checkBounds validates cell indices. The caller must hold the lock.
func (s *Store) checkBounds(row, col int) error {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.columns) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", types.ErrOutOfRange, row, col, len(s.rows), len(s.columns))
	}
	return nil
}

// notify delivers a notification to every observer. Called without the
// lock held so observers may read the store.
func (s *Store) notify(fn func(Observer)) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		fn(o)
	}
}
