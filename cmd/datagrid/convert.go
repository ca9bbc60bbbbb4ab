// Convert command copies a dataset between interchange formats.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datagrid/internal/source"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a dataset between CSV and Excel formats",
	Long: `Convert loads a dataset from the input file and writes it to the
output file. The formats are chosen by file extension.

Example:
  datagrid convert people.csv people.xlsx
  datagrid convert report.xlsx report.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	ds, err := source.Load(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}
	if err := source.Save(out, ds); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	fmt.Printf("Converted %s to %s (%d rows, %d columns)\n", in, out, len(ds.Rows), len(ds.Columns))
	return nil
}
