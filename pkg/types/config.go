package types

import "time"

// Default API fetch parameters used when config.yaml does not override
// them.
const (
	DefaultAPIURL            = "https://jsonplaceholder.typicode.com/users"
	DefaultAPITimeoutSeconds = 5
)

// Config holds the runtime parameters loaded from config.yaml.
type Config struct {
	APIURL            string `json:"api_url" yaml:"api_url"`
	APITimeoutSeconds int    `json:"api_timeout_seconds" yaml:"api_timeout_seconds"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return ErrAPIURLEmpty
	}
	if c.APITimeoutSeconds <= 0 {
		return ErrTimeoutInvalid
	}
	return nil
}

// APITimeout returns the configured fetch timeout as a duration.
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		APIURL:            DefaultAPIURL,
		APITimeoutSeconds: DefaultAPITimeoutSeconds,
	}
}
