package history

import (
	"fmt"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// Store is the silent mutation surface commands replay against. The
// methods bypass type coercion and produce no Commands of their own,
// so replay never feeds back into the history log.
type Store interface {
	// ApplyCell overwrites a single cell with an already-validated value.
	ApplyCell(row, col int, v types.Value) error

	// AppendRow adds an all-null row at the end and returns its index.
	AppendRow() int

	// RemoveRow deletes a row and returns a snapshot of its values.
	RemoveRow(row int) ([]types.Value, error)

	// InsertRow reinserts a previously removed row at the given index.
	InsertRow(row int, vals []types.Value) error
}

// Command is a single undoable change. Once constructed it can be
// undone and redone any number of times, alternating, and always
// restores exactly the state on the other side of the change.
type Command interface {
	// Undo reverses the command against the store.
	Undo(s Store) error

	// Redo reapplies the command against the store.
	Redo(s Store) error

	// Describe returns a human-readable summary for timeline display.
	Describe() string
}

// EditCell records a single cell overwrite.
type EditCell struct {
	Row     int
	Col     int
	ColName string
	Old     types.Value
	New     types.Value
}

// Undo restores the cell's previous value.
func (c *EditCell) Undo(s Store) error {
	return s.ApplyCell(c.Row, c.Col, c.Old)
}

// Redo reapplies the new value.
func (c *EditCell) Redo(s Store) error {
	return s.ApplyCell(c.Row, c.Col, c.New)
}

// Describe returns a summary of the edit.
func (c *EditCell) Describe() string {
	return fmt.Sprintf("edit cell (%d, %q) to %q", c.Row, c.ColName, c.New.String())
}

// AddRow records the append of an all-null row. The row contents are
// implied, so no snapshot is needed.
type AddRow struct {
	Row int
}

// Undo removes the appended row.
func (c *AddRow) Undo(s Store) error {
	_, err := s.RemoveRow(c.Row)
	return err
}

// Redo re-appends the row. Replay order guarantees the store has
// exactly Row rows at this point, so the append lands at the same
// index.
func (c *AddRow) Redo(s Store) error {
	s.AppendRow()
	return nil
}

// Describe returns a summary of the append.
func (c *AddRow) Describe() string {
	return "add new row"
}

// DeleteRow records the removal of a row together with a full snapshot
// of its values; the snapshot is required because the contents cannot
// be reconstructed from indices alone.
type DeleteRow struct {
	Row      int
	Snapshot []types.Value
}

// Undo reinserts the removed row at its original index.
func (c *DeleteRow) Undo(s Store) error {
	return s.InsertRow(c.Row, c.Snapshot)
}

// Redo removes the row again.
func (c *DeleteRow) Redo(s Store) error {
	_, err := s.RemoveRow(c.Row)
	return err
}

// Describe returns a summary of the deletion.
func (c *DeleteRow) Describe() string {
	return fmt.Sprintf("delete row at index %d", c.Row)
}
