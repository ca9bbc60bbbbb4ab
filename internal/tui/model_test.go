package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/datagrid/internal/history"
	"github.com/mesh-intelligence/datagrid/internal/table"
	"github.com/mesh-intelligence/datagrid/pkg/types"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ds := types.Dataset{
		Columns: []types.Column{
			{Name: "name", Kind: types.KindText},
			{Name: "count", Kind: types.KindInteger},
		},
		Rows: [][]types.Value{
			{types.Text("a"), types.Int(1)},
			{types.Text("b"), types.Int(2)},
		},
	}
	store := table.NewStore()
	if err := store.Replace(ds); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	hist := history.NewManager(store)
	m := New(store, hist, "")
	m.width, m.height = 80, 24
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestAddRowThenUndo(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a")
	if got := m.store.RowCount(); got != 3 {
		t.Fatalf("RowCount() = %d, want 3", got)
	}
	if m.row != 2 {
		t.Errorf("cursor row = %d, want 2", m.row)
	}

	m = press(t, m, "u")
	if got := m.store.RowCount(); got != 2 {
		t.Errorf("RowCount() after undo = %d, want 2", got)
	}
	if m.hist.CanRedo() != true {
		t.Error("CanRedo() = false after undo")
	}
}

func TestEditCellCommitsCommand(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "enter")
	if m.mode != modeEdit {
		t.Fatalf("mode = %v, want modeEdit", m.mode)
	}
	m.input.SetValue("zed")
	m = press(t, m, "enter")

	if m.mode != modeGrid {
		t.Fatalf("mode = %v, want modeGrid", m.mode)
	}
	v, err := m.store.Get(0, 0)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !v.Equal(types.Text("zed")) {
		t.Errorf("cell = %v, want zed", v)
	}
	if m.hist.Len() != 1 {
		t.Errorf("history length = %d, want 1", m.hist.Len())
	}
}

func TestEditCoercionFailureKeepsEditorOpen(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "l", "enter") // move to count column, open editor
	m.input.SetValue("not a number")
	m = press(t, m, "enter")

	if m.mode != modeEdit {
		t.Errorf("mode = %v, want modeEdit after failed coercion", m.mode)
	}
	if !m.statusErr {
		t.Error("statusErr = false, want error status")
	}
	if m.hist.Len() != 0 {
		t.Errorf("history length = %d, want 0", m.hist.Len())
	}
}

func TestMarkedRowsDeleteTogether(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "space", "j", "space", "d")
	if got := m.store.RowCount(); got != 0 {
		t.Fatalf("RowCount() = %d, want 0", got)
	}
	if m.hist.Len() != 2 {
		t.Errorf("history length = %d, want 2", m.hist.Len())
	}

	m = press(t, m, "u", "u")
	if got := m.store.RowCount(); got != 2 {
		t.Errorf("RowCount() after undo = %d, want 2", got)
	}
	v, _ := m.store.Get(0, 0)
	if !v.Equal(types.Text("a")) {
		t.Errorf("restored cell = %v, want a", v)
	}
}

func TestTimelineJumpRestoresState(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "enter")
	m.input.SetValue("first")
	m = press(t, m, "enter")
	m = press(t, m, "enter")
	m.input.SetValue("second")
	m = press(t, m, "enter")

	m = press(t, m, "t")
	if m.mode != modeTimeline {
		t.Fatalf("mode = %v, want modeTimeline", m.mode)
	}
	if m.timelineCursor != 2 {
		t.Fatalf("timelineCursor = %d, want 2", m.timelineCursor)
	}

	m = press(t, m, "k", "k", "enter") // move to the loaded state and jump
	if m.mode != modeGrid {
		t.Fatalf("mode = %v, want modeGrid", m.mode)
	}
	v, _ := m.store.Get(0, 0)
	if !v.Equal(types.Text("a")) {
		t.Errorf("cell = %v, want original a", v)
	}
	if !m.hist.CanRedo() {
		t.Error("CanRedo() = false after jumping back")
	}
}

func TestRestartDiscardsHistory(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a", "a")
	m = press(t, m, "R")
	if m.mode != modeConfirmRestart {
		t.Fatalf("mode = %v, want modeConfirmRestart", m.mode)
	}

	m = press(t, m, "y")
	if got := m.store.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if m.hist.Len() != 0 {
		t.Errorf("history length = %d, want 0", m.hist.Len())
	}
}

func TestReloadWithoutBackingFile(t *testing.T) {
	next, _ := newTestModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m := next.(Model)
	if !m.statusErr {
		t.Error("statusErr = false, want error for reload without a path")
	}
}

func TestFindStartsAtCursorCell(t *testing.T) {
	m := newTestModel(t)

	// Both (0,0) and (1,0) match; the first search must prefer the
	// cursor cell over the later match.
	if _, err := m.store.SetCell(0, 0, "ba"); err != nil {
		t.Fatalf("SetCell() error = %v", err)
	}

	m = press(t, m, "/")
	if m.mode != modeFind {
		t.Fatalf("mode = %v, want modeFind", m.mode)
	}
	m.input.SetValue("b")
	m = press(t, m, "enter")

	if m.row != 0 || m.col != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", m.row, m.col)
	}

	m = press(t, m, "n")
	if m.row != 1 || m.col != 0 {
		t.Errorf("cursor after next = (%d, %d), want (1, 0)", m.row, m.col)
	}
}

func TestReloadWhileLoadInFlight(t *testing.T) {
	m := newTestModel(t)
	m.path = "data.csv"
	m.loading = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)
	if cmd != nil {
		t.Error("second reload started a load command")
	}
	if !m.statusErr {
		t.Error("statusErr = false, want error status")
	}
	if m.status != types.ErrLoadInFlight.Error() {
		t.Errorf("status = %q, want %q", m.status, types.ErrLoadInFlight.Error())
	}
	if !m.loading {
		t.Error("loading = false, the pending load was dropped")
	}
}
