// Root command for the datagrid CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datagrid/internal/paths"
	"github.com/mesh-intelligence/datagrid/pkg/datagrid"
	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// appConfig holds the configuration loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var appConfig = types.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:     "datagrid",
	Short:   "Datagrid is a tabular data editor with full undo history",
	Version: datagrid.Version,
	Long: `Datagrid edits tabular data (CSV, Excel, SQLite) in an interactive
grid. Every change is recorded as a command, so any editing session can
be walked backward and forward, or jumped to any prior state.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dbCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > DATAGRID_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
