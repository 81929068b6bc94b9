package config

import "time"

// Config represents the complete configuration for favicache.
type Config struct {
	// Cache controls both cache tiers and the canonical icon size.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" toml:"cache" json:"cache"`
	// Fetch controls the per-source HTTP client.
	Fetch FetchConfig `mapstructure:"fetch" yaml:"fetch" toml:"fetch" json:"fetch"`
	// Sources overrides the third-party icon API templates.
	Sources SourcesConfig `mapstructure:"sources" yaml:"sources" toml:"sources" json:"sources"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// CacheConfig holds memory and disk tier settings.
type CacheConfig struct {
	// Dir is the disk tier directory (empty = $XDG_CACHE_HOME/favicache/favicons).
	Dir string `mapstructure:"dir" yaml:"dir" toml:"dir" json:"dir,omitempty" jsonschema:"description=Disk cache directory; empty uses $XDG_CACHE_HOME/favicache/favicons"`
	// MemoryMaxEntries bounds the number of decoded icons held in memory.
	MemoryMaxEntries int `mapstructure:"memory_max_entries" yaml:"memory_max_entries" toml:"memory_max_entries" json:"memory_max_entries" jsonschema:"minimum=1,default=100"`
	// MemoryMaxBytes bounds the approximate bytes held in memory.
	MemoryMaxBytes int64 `mapstructure:"memory_max_bytes" yaml:"memory_max_bytes" toml:"memory_max_bytes" json:"memory_max_bytes" jsonschema:"minimum=1,default=52428800"`
	// IconSize is the canonical edge length in pixels.
	IconSize int `mapstructure:"icon_size" yaml:"icon_size" toml:"icon_size" json:"icon_size" jsonschema:"minimum=1,maximum=1024,default=64"`
}

// FetchConfig holds per-source HTTP client settings.
type FetchConfig struct {
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" yaml:"connect_timeout" toml:"connect_timeout" json:"connect_timeout" jsonschema:"type=string,description=Dial timeout per source (Go duration)"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout" toml:"request_timeout" json:"request_timeout" jsonschema:"type=string,description=Total timeout per source (Go duration)"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" json:"max_body_bytes" jsonschema:"minimum=1,default=1048576"`
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent" json:"user_agent"`
}

// SourcesConfig holds the third-party icon API templates.
type SourcesConfig struct {
	// PrimaryAPI is tried first; must contain one %s placeholder for the host.
	PrimaryAPI string `mapstructure:"primary_api" yaml:"primary_api" toml:"primary_api" json:"primary_api"`
	// FallbackAPI is tried last; must contain %s for the host and %d for the size.
	FallbackAPI string `mapstructure:"fallback_api" yaml:"fallback_api" toml:"fallback_api" json:"fallback_api"`
	// FallbackSize is the icon size requested from FallbackAPI.
	FallbackSize int `mapstructure:"fallback_size" yaml:"fallback_size" toml:"fallback_size" json:"fallback_size" jsonschema:"minimum=1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}
