// Info command prints per-column statistics for a dataset.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datagrid/internal/source"
	"github.com/mesh-intelligence/datagrid/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Describe a dataset: columns, kinds, nulls, and numeric ranges",
	Long: `Info loads a dataset and prints one line per column: its kind, the
row and null counts, and min/max/mean for numeric columns.

Example:
  datagrid info people.csv
  datagrid info people.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	ds, err := source.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	stats := ds.Stats()
	if flagJSON {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printStats(path, ds, stats)
	return nil
}

func printStats(path string, ds types.Dataset, stats []types.ColumnStats) {
	fmt.Printf("%s: %d rows, %d columns\n\n", path, len(ds.Rows), len(ds.Columns))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tKIND\tNULLS\tMIN\tMAX\tMEAN")
	for _, cs := range stats {
		if cs.Numeric {
			fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\t%g\n", cs.Name, cs.Kind, cs.Nulls, cs.Min, cs.Max, cs.Mean)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%d\t-\t-\t-\n", cs.Name, cs.Kind, cs.Nulls)
		}
	}
	w.Flush()
}
