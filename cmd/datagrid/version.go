// Version command for the datagrid CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datagrid/pkg/datagrid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datagrid version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("datagrid", datagrid.Version)
	},
}
