// Package tui implements the interactive grid editor. The model wraps
// a cell store and its edit history; every mutation goes through a
// command so undo, redo, and timeline jumps stay exact.
package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/datagrid/internal/history"
	"github.com/mesh-intelligence/datagrid/internal/logger"
	"github.com/mesh-intelligence/datagrid/internal/table"
	"github.com/mesh-intelligence/datagrid/pkg/types"
)

type mode int

const (
	modeGrid mode = iota
	modeEdit
	modeFind
	modeTimeline
	modeConfirmRestart
)

// Model is the Bubble Tea model for the grid editor.
type Model struct {
	store *table.Store
	hist  *history.Manager
	path  string

	mode mode
	keys KeyMap

	row    int
	col    int
	rowOff int
	marks  map[int]bool

	input textinput.Model
	query string

	// Timeline position: 0 is the loaded dataset, i+1 is command i.
	timelineCursor int

	status    string
	statusErr bool
	loading   bool
	saving    bool

	width  int
	height int
}

// New builds a model editing the given store. path is the backing file
// used for save and reload; it may be empty for fetched datasets.
func New(store *table.Store, hist *history.Manager, path string) Model {
	return Model{
		store: store,
		hist:  hist,
		path:  path,
		keys:  DefaultKeyMap,
		marks: make(map[int]bool),
	}
}

// Run starts the editor in the alternate screen and blocks until the
// user quits.
func Run(store *table.Store, hist *history.Manager, path string) error {
	p := tea.NewProgram(New(store, hist, path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampViewport()

	case tea.KeyMsg:
		switch m.mode {
		case modeGrid:
			return m.handleGridKeys(msg)
		case modeEdit:
			return m.handleEditKeys(msg)
		case modeFind:
			return m.handleFindKeys(msg)
		case modeTimeline:
			return m.handleTimelineKeys(msg)
		case modeConfirmRestart:
			return m.handleConfirmKeys(msg)
		}

	case datasetLoadedMsg:
		m.loading = false
		if err := m.store.Replace(msg.ds); err != nil {
			m.setError(err)
			break
		}
		m.hist.Clear()
		m.marks = make(map[int]bool)
		m.clampCursor()
		m.setStatus(fmt.Sprintf("reloaded %s (%d rows)", m.path, m.store.RowCount()))

	case loadFailedMsg:
		m.loading = false
		m.setError(msg.err)

	case savedMsg:
		m.saving = false
		m.setStatus(fmt.Sprintf("saved %s", msg.path))
		logger.Info("dataset saved", "path", msg.path)

	case saveFailedMsg:
		m.saving = false
		m.setError(msg.err)
	}

	return m, cmd
}

// handleGridKeys handles key presses when the grid has focus.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < m.store.RowCount()-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < m.store.ColumnCount()-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Home):
		m.row = 0
	case key.Matches(msg, m.keys.End):
		if n := m.store.RowCount(); n > 0 {
			m.row = n - 1
		}

	case key.Matches(msg, m.keys.Edit):
		if m.store.RowCount() == 0 {
			m.setError(fmt.Errorf("no rows to edit"))
			break
		}
		v, err := m.store.Get(m.row, m.col)
		if err != nil {
			m.setError(err)
			break
		}
		ti := textinput.New()
		ti.SetValue(v.String())
		ti.CursorEnd()
		ti.Focus()
		m.input = ti
		m.mode = modeEdit

	case key.Matches(msg, m.keys.AddRow):
		cmd := m.store.AddRow()
		m.hist.Append(cmd)
		m.row = m.store.RowCount() - 1
		m.setStatus("added row")

	case key.Matches(msg, m.keys.DeleteRow):
		return m.deleteRows()

	case key.Matches(msg, m.keys.Mark):
		if m.store.RowCount() > 0 {
			if m.marks[m.row] {
				delete(m.marks, m.row)
			} else {
				m.marks[m.row] = true
			}
		}

	case key.Matches(msg, m.keys.Undo):
		if !m.hist.CanUndo() {
			m.setStatus("nothing to undo")
			break
		}
		if err := m.hist.Undo(); err != nil {
			m.setError(err)
			break
		}
		m.clampCursor()
		m.setStatus("undid 1 edit")

	case key.Matches(msg, m.keys.Redo):
		if !m.hist.CanRedo() {
			m.setStatus("nothing to redo")
			break
		}
		if err := m.hist.Redo(); err != nil {
			m.setError(err)
			break
		}
		m.clampCursor()
		m.setStatus("redid 1 edit")

	case key.Matches(msg, m.keys.Timeline):
		m.timelineCursor = m.hist.Cursor() + 1
		m.mode = modeTimeline

	case key.Matches(msg, m.keys.Restart):
		if m.hist.Len() == 0 {
			m.setStatus("no edits to discard")
			break
		}
		m.mode = modeConfirmRestart

	case key.Matches(msg, m.keys.Find):
		ti := textinput.New()
		ti.Prompt = "/"
		ti.Focus()
		m.input = ti
		m.mode = modeFind

	case key.Matches(msg, m.keys.Next):
		if m.query == "" {
			m.setStatus("no search query")
			break
		}
		row, col, ok := m.store.FindFrom(m.query, m.row, m.col)
		if !ok {
			m.setStatus(fmt.Sprintf("no match for %q", m.query))
			break
		}
		m.row, m.col = row, col
		m.setStatus(fmt.Sprintf("match at row %d", row))

	case key.Matches(msg, m.keys.Save):
		if m.path == "" {
			m.setError(fmt.Errorf("no backing file to save to"))
			break
		}
		if m.saving {
			m.setStatus("save already in progress")
			break
		}
		m.saving = true
		m.setStatus(fmt.Sprintf("saving %s...", m.path))
		return m, saveFileCmd(m.path, m.store.Snapshot())

	case key.Matches(msg, m.keys.Reload):
		if m.path == "" {
			m.setError(fmt.Errorf("no backing file to reload"))
			break
		}
		if m.loading {
			m.setError(types.ErrLoadInFlight)
			break
		}
		m.loading = true
		m.setStatus(fmt.Sprintf("loading %s...", m.path))
		return m, loadFileCmd(m.path)
	}

	m.clampViewport()
	return m, nil
}

// handleEditKeys handles key presses while a cell editor is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		cmd, err := m.store.SetCell(m.row, m.col, m.input.Value())
		if err != nil {
			// Keep the editor open so the input can be fixed.
			m.setError(err)
			return m, nil
		}
		m.hist.Append(cmd)
		m.mode = modeGrid
		m.setStatus(cmd.Describe())

	case key.Matches(msg, m.keys.Esc):
		m.mode = modeGrid
		m.setStatus("edit cancelled")

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFindKeys handles key presses while the search prompt is open.
func (m Model) handleFindKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.mode = modeGrid
		m.query = m.input.Value()
		if m.query == "" {
			break
		}
		// The first search starts at the cursor cell itself; n steps
		// strictly past it.
		row, col, ok := m.store.FindFrom(m.query, m.row, m.col-1)
		if !ok {
			m.setStatus(fmt.Sprintf("no match for %q", m.query))
			break
		}
		m.row, m.col = row, col
		m.setStatus(fmt.Sprintf("match at row %d", row))

	case key.Matches(msg, m.keys.Esc):
		m.mode = modeGrid

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.clampViewport()
	return m, nil
}

// handleTimelineKeys handles key presses in the timeline view.
func (m Model) handleTimelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.timelineCursor > 0 {
			m.timelineCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.timelineCursor < m.hist.Len() {
			m.timelineCursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if err := m.hist.JumpTo(m.timelineCursor - 1); err != nil {
			m.setError(err)
			break
		}
		m.mode = modeGrid
		m.clampCursor()
		m.setStatus(fmt.Sprintf("jumped to state %d", m.timelineCursor))

	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Timeline):
		m.mode = modeGrid
	}

	m.clampViewport()
	return m, nil
}

// handleConfirmKeys handles the restart-edits confirmation prompt.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		if err := m.hist.JumpTo(-1); err != nil {
			m.setError(err)
			m.mode = modeGrid
			break
		}
		m.hist.Clear()
		m.marks = make(map[int]bool)
		m.mode = modeGrid
		m.clampCursor()
		m.setStatus("discarded all edits")
		logger.Info("edits discarded", "path", m.path)

	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Esc):
		m.mode = modeGrid
	}
	return m, nil
}

// deleteRows removes the marked rows, or the cursor row when nothing
// is marked. Rows are removed highest index first so earlier removals
// do not shift the later ones.
func (m Model) deleteRows() (tea.Model, tea.Cmd) {
	if m.store.RowCount() == 0 {
		m.setError(fmt.Errorf("no rows to delete"))
		return m, nil
	}

	rows := make([]int, 0, len(m.marks))
	for r := range m.marks {
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		rows = append(rows, m.row)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rows)))

	for _, r := range rows {
		cmd, err := m.store.DeleteRow(r)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.hist.Append(cmd)
	}

	m.marks = make(map[int]bool)
	m.clampCursor()
	if len(rows) == 1 {
		m.setStatus("deleted 1 row")
	} else {
		m.setStatus(fmt.Sprintf("deleted %d rows", len(rows)))
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	logger.Error("editor error", "error", err)
}

// clampCursor pulls the cursor back inside the grid after the row
// count changes under it.
func (m *Model) clampCursor() {
	if n := m.store.RowCount(); m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if n := m.store.ColumnCount(); m.col >= n {
		m.col = n - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	m.clampViewport()
}

// clampViewport scrolls the visible row window to keep the cursor on
// screen.
func (m *Model) clampViewport() {
	visible := m.visibleRows()
	if m.row < m.rowOff {
		m.rowOff = m.row
	}
	if m.row >= m.rowOff+visible {
		m.rowOff = m.row - visible + 1
	}
	if m.rowOff < 0 {
		m.rowOff = 0
	}
}

// visibleRows returns how many data rows fit under the chrome lines.
func (m *Model) visibleRows() int {
	// Title, header, status, and help each take a line.
	v := m.height - 5
	if v < 1 {
		v = 1
	}
	return v
}
