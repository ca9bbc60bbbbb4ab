package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/datagrid/internal/source"
	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// loadFileCmd re-reads the backing file off the update loop.
func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := source.Load(path)
		if err != nil {
			return loadFailedMsg{err}
		}
		return datasetLoadedMsg{ds}
	}
}

// saveFileCmd writes a snapshot to the backing file off the update loop.
func saveFileCmd(path string, ds types.Dataset) tea.Cmd {
	return func() tea.Msg {
		if err := source.Save(path, ds); err != nil {
			return saveFailedMsg{err}
		}
		return savedMsg{path}
	}
}
