package types

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"defaults", DefaultConfig(), nil},
		{"empty url", Config{APITimeoutSeconds: 5}, ErrAPIURLEmpty},
		{"zero timeout", Config{APIURL: "http://x"}, ErrTimeoutInvalid},
		{"negative timeout", Config{APIURL: "http://x", APITimeoutSeconds: -1}, ErrTimeoutInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAPITimeout(t *testing.T) {
	c := Config{APITimeoutSeconds: 7}
	if got := c.APITimeout(); got != 7*time.Second {
		t.Errorf("APITimeout() = %v, want 7s", got)
	}
}
