package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/products.json", cfg.Store.DataFile)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_SERVER_PORT", "9090")
	t.Setenv("STOREFRONT_STORE_DATA_FILE", "/tmp/catalog.json")
	t.Setenv("STOREFRONT_LOGGER_FORMAT", "console")
	t.Setenv("STOREFRONT_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/catalog.json", cfg.Store.DataFile)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check string
	}{
		{
			name:  "Invalid log level",
			env:   map[string]string{"STOREFRONT_LOGGER_LEVEL": "verbose"},
			check: "invalid log level",
		},
		{
			name:  "Invalid log format",
			env:   map[string]string{"STOREFRONT_LOGGER_FORMAT": "xml"},
			check: "invalid log format",
		},
		{
			name:  "Port out of range",
			env:   map[string]string{"STOREFRONT_SERVER_PORT": "70000"},
			check: "invalid server port",
		},
		{
			name:  "Non-positive rate limit",
			env:   map[string]string{"STOREFRONT_RATE_LIMIT_RPS": "-1"},
			check: "rate limit rps must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.check)
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 3001}
	assert.Equal(t, "127.0.0.1:3001", cfg.Address())
}
