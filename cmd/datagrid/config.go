// Config loading for the datagrid CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyAPIURL            = "api_url"
	cfgKeyAPITimeoutSeconds = "api_timeout_seconds"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Datagrid CLI configuration

# Source URL for the fetch command. Must return a JSON array of objects.
api_url: https://jsonplaceholder.typicode.com/users

# HTTP timeout for the fetch command, in seconds.
api_timeout_seconds: 5
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	cfg := types.DefaultConfig()

	if err := ensureConfigDir(configDir); err != nil {
		return cfg, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cfg, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, types.DefaultAPIURL)
	v.SetDefault(cfgKeyAPITimeoutSeconds, types.DefaultAPITimeoutSeconds)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.APIURL = v.GetString(cfgKeyAPIURL)
	cfg.APITimeoutSeconds = v.GetInt(cfgKeyAPITimeoutSeconds)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
