package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateFetch(config)...)
	validationErrors = append(validationErrors, validateSources(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateCache(config *Config) []string {
	var validationErrors []string
	if config.Cache.MemoryMaxEntries <= 0 {
		validationErrors = append(validationErrors, "cache.memory_max_entries must be positive")
	}
	if config.Cache.MemoryMaxBytes <= 0 {
		validationErrors = append(validationErrors, "cache.memory_max_bytes must be positive")
	}
	if config.Cache.IconSize < 1 || config.Cache.IconSize > 1024 {
		validationErrors = append(validationErrors, "cache.icon_size must be between 1 and 1024")
	}
	return validationErrors
}

func validateFetch(config *Config) []string {
	var validationErrors []string
	if config.Fetch.ConnectTimeout <= 0 {
		validationErrors = append(validationErrors, "fetch.connect_timeout must be positive")
	}
	if config.Fetch.RequestTimeout <= 0 {
		validationErrors = append(validationErrors, "fetch.request_timeout must be positive")
	}
	if config.Fetch.MaxBodyBytes <= 0 {
		validationErrors = append(validationErrors, "fetch.max_body_bytes must be positive")
	}
	return validationErrors
}

func validateSources(config *Config) []string {
	var validationErrors []string
	if strings.Count(config.Sources.PrimaryAPI, "%s") != 1 {
		validationErrors = append(validationErrors, "sources.primary_api must contain exactly one %s placeholder")
	}
	api := config.Sources.FallbackAPI
	if strings.Count(api, "%s") != 1 || strings.Count(api, "%d") != 1 || strings.Index(api, "%s") > strings.Index(api, "%d") {
		validationErrors = append(validationErrors, "sources.fallback_api must contain %s then %d placeholders")
	}
	if config.Sources.FallbackSize <= 0 {
		validationErrors = append(validationErrors, "sources.fallback_size must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
