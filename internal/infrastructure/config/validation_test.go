package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "entries", mutate: func(c *Config) { c.Cache.MemoryMaxEntries = -1 }, want: "cache.memory_max_entries"},
		{name: "bytes", mutate: func(c *Config) { c.Cache.MemoryMaxBytes = 0 }, want: "cache.memory_max_bytes"},
		{name: "icon size", mutate: func(c *Config) { c.Cache.IconSize = 4096 }, want: "cache.icon_size"},
		{name: "connect timeout", mutate: func(c *Config) { c.Fetch.ConnectTimeout = 0 }, want: "fetch.connect_timeout"},
		{name: "request timeout", mutate: func(c *Config) { c.Fetch.RequestTimeout = -1 }, want: "fetch.request_timeout"},
		{name: "body cap", mutate: func(c *Config) { c.Fetch.MaxBodyBytes = 0 }, want: "fetch.max_body_bytes"},
		{name: "primary api", mutate: func(c *Config) { c.Sources.PrimaryAPI = "https://icons.example" }, want: "sources.primary_api"},
		{name: "fallback api order", mutate: func(c *Config) { c.Sources.FallbackAPI = "https://x/?sz=%d&d=%s" }, want: "sources.fallback_api"},
		{name: "fallback size", mutate: func(c *Config) { c.Sources.FallbackSize = 0 }, want: "sources.fallback_size"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, want: "logging.level"},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, want: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.MemoryMaxEntries = 0
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.memory_max_entries")
	assert.Contains(t, err.Error(), "logging.format")
}
