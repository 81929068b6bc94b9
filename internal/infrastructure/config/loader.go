// Package config loads favicache settings from TOML, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager handles configuration loading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	mu     sync.RWMutex
}

// NewManager creates a new configuration manager.
// configFile overrides the XDG config file location when non-empty.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// Set up environment variable support
	v.SetEnvPrefix("FAVICACHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Most keys map automatically (FAVICACHE_CACHE_DIR, FAVICACHE_FETCH_USER_AGENT).
	// The logging variables use shorter names.
	if err := v.BindEnv("logging.level", "FAVICACHE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FAVICACHE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FAVICACHE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FAVICACHE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}

	if config.Cache.Dir == "" {
		dir, err := GetFaviconCacheDir()
		if err != nil {
			return fmt.Errorf("failed to determine cache directory: %w", err)
		}
		config.Cache.Dir = dir
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		// An explicit config file that does not exist surfaces as a path error.
		if m.viper.ConfigFileUsed() != "" && isNotExist(err) {
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file in use, or the
// path that would be read when no file exists.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := GetConfigFile()
	return path
}

// EffectiveTOML renders the loaded configuration as TOML.
func (m *Manager) EffectiveTOML() ([]byte, error) {
	data, err := toml.Marshal(m.effectiveDoc())
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// EffectiveYAML renders the loaded configuration as YAML.
func (m *Manager) EffectiveYAML() ([]byte, error) {
	data, err := yaml.Marshal(m.effectiveDoc())
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// effectiveDoc flattens the config into plain maps so durations render as
// strings in every output format.
func (m *Manager) effectiveDoc() map[string]any {
	cfg := m.Get()
	return map[string]any{
		"cache": map[string]any{
			"dir":                cfg.Cache.Dir,
			"memory_max_entries": cfg.Cache.MemoryMaxEntries,
			"memory_max_bytes":   cfg.Cache.MemoryMaxBytes,
			"icon_size":          cfg.Cache.IconSize,
		},
		"fetch": map[string]any{
			"connect_timeout": cfg.Fetch.ConnectTimeout.String(),
			"request_timeout": cfg.Fetch.RequestTimeout.String(),
			"max_body_bytes":  cfg.Fetch.MaxBodyBytes,
			"user_agent":      cfg.Fetch.UserAgent,
		},
		"sources": map[string]any{
			"primary_api":   cfg.Sources.PrimaryAPI,
			"fallback_api":  cfg.Sources.FallbackAPI,
			"fallback_size": cfg.Sources.FallbackSize,
		},
		"logging": map[string]any{
			"level":  cfg.Logging.Level,
			"format": cfg.Logging.Format,
		},
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()
	m.setCacheDefaults(defaults)
	m.setFetchDefaults(defaults)
	m.setSourcesDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setCacheDefaults(defaults *Config) {
	m.viper.SetDefault("cache.dir", defaults.Cache.Dir)
	m.viper.SetDefault("cache.memory_max_entries", defaults.Cache.MemoryMaxEntries)
	m.viper.SetDefault("cache.memory_max_bytes", defaults.Cache.MemoryMaxBytes)
	m.viper.SetDefault("cache.icon_size", defaults.Cache.IconSize)
}

func (m *Manager) setFetchDefaults(defaults *Config) {
	m.viper.SetDefault("fetch.connect_timeout", defaults.Fetch.ConnectTimeout)
	m.viper.SetDefault("fetch.request_timeout", defaults.Fetch.RequestTimeout)
	m.viper.SetDefault("fetch.max_body_bytes", defaults.Fetch.MaxBodyBytes)
	m.viper.SetDefault("fetch.user_agent", defaults.Fetch.UserAgent)
}

func (m *Manager) setSourcesDefaults(defaults *Config) {
	m.viper.SetDefault("sources.primary_api", defaults.Sources.PrimaryAPI)
	m.viper.SetDefault("sources.fallback_api", defaults.Sources.FallbackAPI)
	m.viper.SetDefault("sources.fallback_size", defaults.Sources.FallbackSize)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
