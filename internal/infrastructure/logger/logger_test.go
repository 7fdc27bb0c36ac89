package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce/returns/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{
			name: "console format",
			cfg:  config.LogConfig{Level: "info", Format: "console", Output: "stdout"},
		},
		{
			name: "json format",
			cfg:  config.LogConfig{Level: "info", Format: "json", Output: "stdout"},
		},
		{
			name: "debug level",
			cfg:  config.LogConfig{Level: "debug", Format: "console", Output: "stderr"},
		},
		{
			name: "unknown level falls back to info",
			cfg:  config.LogConfig{Level: "verbose", Format: "json", Output: "stdout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewForEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{name: "development", env: "development"},
		{name: "production", env: "production"},
		{name: "unknown", env: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewForEnvironment(tt.env)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
