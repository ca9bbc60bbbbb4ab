// Edit command opens a file in the interactive grid editor.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datagrid/internal/history"
	"github.com/mesh-intelligence/datagrid/internal/logger"
	"github.com/mesh-intelligence/datagrid/internal/source"
	"github.com/mesh-intelligence/datagrid/internal/table"
	"github.com/mesh-intelligence/datagrid/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a CSV or Excel file in the interactive grid",
	Long: `Edit opens a file in the grid editor. Every cell edit, row
addition, and row deletion is recorded; undo, redo, and the timeline
view can move the grid to any state the session has seen.

Example:
  datagrid edit people.csv
  datagrid edit books.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]

	ds, err := source.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	// Log to file while the grid owns the terminal.
	logger.Init(true)
	logger.Info("editing session started", "path", path, "rows", len(ds.Rows))

	store := table.NewStore()
	if err := store.Replace(ds); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	hist := history.NewManager(store)
	return tui.Run(store, hist, path)
}
