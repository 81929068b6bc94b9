package config

import "time"

// Default configuration constants
const (
	// Cache defaults
	defaultMemoryMaxEntries = 100      // entries
	defaultMemoryMaxBytes   = 50 << 20 // 50 MiB
	defaultIconSize         = 64       // pixels

	// Fetch defaults
	defaultConnectTimeout = 10 * time.Second
	defaultRequestTimeout = 15 * time.Second
	defaultMaxBodyBytes   = 1 << 20 // 1 MiB
	defaultUserAgent      = "favicache/1.0 (+https://github.com/bnema/favicache)"

	// Source defaults
	defaultPrimaryAPI   = "https://icons.duckduckgo.com/ip3/%s.ico"
	defaultFallbackAPI  = "https://www.google.com/s2/favicons?domain=%s&sz=%d"
	defaultFallbackSize = 64

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			MemoryMaxEntries: defaultMemoryMaxEntries,
			MemoryMaxBytes:   defaultMemoryMaxBytes,
			IconSize:         defaultIconSize,
		},
		Fetch: FetchConfig{
			ConnectTimeout: defaultConnectTimeout,
			RequestTimeout: defaultRequestTimeout,
			MaxBodyBytes:   defaultMaxBodyBytes,
			UserAgent:      defaultUserAgent,
		},
		Sources: SourcesConfig{
			PrimaryAPI:   defaultPrimaryAPI,
			FallbackAPI:  defaultFallbackAPI,
			FallbackSize: defaultFallbackSize,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
