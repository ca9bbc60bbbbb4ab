package tui

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

const (
	minColWidth = 4
	maxColWidth = 18
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	switch m.mode {
	case modeTimeline:
		b.WriteString(m.renderTimeline())
	default:
		b.WriteString(m.renderGrid())
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTitle() string {
	name := m.path
	if name == "" {
		name = "(unsaved dataset)"
	}
	title := fmt.Sprintf("datagrid — %s  [%d rows, %d edits]",
		name, m.store.RowCount(), m.hist.Cursor()+1)
	return titleStyle.Render(title)
}

// renderGrid draws the header and the visible row window, highlighting
// the cursor cell and marked rows.
func (m Model) renderGrid() string {
	cols := m.store.Columns()
	if len(cols) == 0 {
		return "\n  (empty dataset)\n\n"
	}

	snapshot := m.store.Snapshot()
	widths := columnWidths(cols, snapshot.Rows)

	var b strings.Builder

	// Header.
	b.WriteString("    ")
	for c, col := range cols {
		b.WriteString(headerStyle.Render(pad(col.Name, widths[c])))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	visible := m.visibleRows()
	end := m.rowOff + visible
	if end > len(snapshot.Rows) {
		end = len(snapshot.Rows)
	}
	for r := m.rowOff; r < end; r++ {
		mark := "  "
		if m.marks[r] {
			mark = markedStyle.Render("* ")
		}
		b.WriteString(mark)
		if r == m.row {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		for c, v := range snapshot.Rows[r] {
			cell := renderValue(v, widths[c])
			if r == m.row && c == m.col && m.mode == modeGrid {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for i := end - m.rowOff; i < visible; i++ {
		b.WriteString("\n")
	}

	if m.mode == modeEdit {
		b.WriteString(fmt.Sprintf("edit (%d, %s): %s\n",
			m.row, m.store.ColumnName(m.col), m.input.View()))
	} else if m.mode == modeFind {
		b.WriteString(fmt.Sprintf("find: %s\n", m.input.View()))
	} else if m.mode == modeConfirmRestart {
		b.WriteString(errorStyle.Render(
			fmt.Sprintf("discard all %d edits and restore the loaded data? [y/n]", m.hist.Len())))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

// renderTimeline draws the edit log. Entry 0 is the loaded dataset;
// the entry the grid currently reflects is shown in bold.
func (m Model) renderTimeline() string {
	var b strings.Builder
	b.WriteString(timelineStyle.Render("timeline (enter to jump, esc to close)"))
	b.WriteString("\n")

	current := m.hist.Cursor() + 1
	lines := make([]string, 0, m.hist.Len()+1)
	lines = append(lines, "original data")
	for _, e := range m.hist.Entries() {
		lines = append(lines, fmt.Sprintf("%s  %s", e.At.Format("15:04:05"), e.Description))
	}

	visible := m.visibleRows()
	off := 0
	if m.timelineCursor >= visible {
		off = m.timelineCursor - visible + 1
	}
	end := off + visible
	if end > len(lines) {
		end = len(lines)
	}
	for i := off; i < end; i++ {
		cursor := "  "
		if i == m.timelineCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%3d  %s", cursor, i, lines[i])
		if i == current {
			line = currentStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - off; i < visible; i++ {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) renderHelp() string {
	var pairs [][2]string
	switch m.mode {
	case modeEdit:
		pairs = [][2]string{{"enter", "apply"}, {"esc", "cancel"}}
	case modeFind:
		pairs = [][2]string{{"enter", "search"}, {"esc", "cancel"}}
	case modeTimeline:
		pairs = [][2]string{{"↑/↓", "move"}, {"enter", "jump"}, {"esc", "close"}}
	case modeConfirmRestart:
		pairs = [][2]string{{"y", "discard"}, {"n", "keep"}}
	default:
		pairs = [][2]string{
			{"enter", "edit"}, {"a", "add"}, {"d", "delete"}, {"space", "mark"},
			{"u", "undo"}, {"r", "redo"}, {"t", "timeline"}, {"/", "find"},
			{"ctrl+s", "save"}, {"q", "quit"},
		}
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = footerKeyStyle.Render(p[0]) + footerStyle.Render(" "+p[1])
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

// columnWidths sizes each column to its widest visible content.
func columnWidths(cols []types.Column, rows [][]types.Value) []int {
	widths := make([]int, len(cols))
	for c, col := range cols {
		widths[c] = len(col.Name)
	}
	for _, row := range rows {
		for c, v := range row {
			if n := len(v.String()); n > widths[c] {
				widths[c] = n
			}
		}
	}
	for c := range widths {
		if widths[c] < minColWidth {
			widths[c] = minColWidth
		}
		if widths[c] > maxColWidth {
			widths[c] = maxColWidth
		}
	}
	return widths
}

// renderValue pads or truncates a value's display form, dimming nulls.
func renderValue(v types.Value, width int) string {
	if v.IsNull() {
		return nullStyle.Render(pad("·", width))
	}
	return pad(v.String(), width)
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
