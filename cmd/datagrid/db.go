// Db commands move datasets between files and SQLite databases.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datagrid/internal/source"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Import and export datasets from SQLite databases",
}

var dbImportCmd = &cobra.Command{
	Use:   "import <database> <table> <output>",
	Short: "Read a SQLite table into a CSV or Excel file",
	Long: `Import reads an entire SQLite table and writes it to the output
file. Column kinds follow the table's declared SQL types.

Example:
  datagrid db import app.db users users.csv`,
	Args: cobra.ExactArgs(3),
	RunE: runDbImport,
}

var dbExportCmd = &cobra.Command{
	Use:   "export <input> <database> <table>",
	Short: "Write a CSV or Excel file into a SQLite table",
	Long: `Export loads a dataset from the input file and replaces the named
SQLite table with its contents. The table is recreated inside a single
transaction, so a failed export leaves the database unchanged.

Example:
  datagrid db export users.csv app.db users`,
	Args: cobra.ExactArgs(3),
	RunE: runDbExport,
}

func init() {
	dbCmd.AddCommand(dbImportCmd)
	dbCmd.AddCommand(dbExportCmd)
}

func runDbImport(cmd *cobra.Command, args []string) error {
	dbPath, tableName, out := args[0], args[1], args[2]

	ds, err := source.LoadTable(dbPath, tableName)
	if err != nil {
		return fmt.Errorf("load table %s: %w", tableName, err)
	}
	if err := source.Save(out, ds); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	fmt.Printf("Imported %d rows from %s.%s into %s\n", len(ds.Rows), dbPath, tableName, out)
	return nil
}

func runDbExport(cmd *cobra.Command, args []string) error {
	in, dbPath, tableName := args[0], args[1], args[2]

	ds, err := source.Load(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}
	if err := source.SaveTable(dbPath, tableName, ds); err != nil {
		return fmt.Errorf("export to %s.%s: %w", dbPath, tableName, err)
	}

	fmt.Printf("Exported %d rows from %s into %s.%s\n", len(ds.Rows), in, dbPath, tableName)
	return nil
}
