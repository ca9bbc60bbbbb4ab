// Package main provides the datagrid CLI, a tabular data editor with
// command-based undo, redo, and timeline jumps.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
