// Package url derives favicon cache keys from bookmark identifiers.
package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidIdentifier is returned when an identifier has no parseable host.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// CacheKey is the normalized lowercase host addressing both cache tiers.
type CacheKey string

// String returns the key as a plain string.
func (k CacheKey) String() string {
	return string(k)
}

// Normalize adds https:// prefix if missing for host-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a host.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if strings.Contains(input, "://") {
		return input
	}

	// Looks like a host (contains . and no spaces), or is a bare single label like localhost
	if !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// Key extracts the cache key (host) from an identifier.
// Scheme, port, path and query are ignored so every URL on a host maps to the same key.
func Key(identifier string) (CacheKey, error) {
	parsed, err := parse(identifier)
	if err != nil {
		return "", err
	}

	host := strings.TrimSuffix(strings.ToLower(parsed.Hostname()), ".")
	if host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidIdentifier, identifier)
	}
	return CacheKey(host), nil
}

// Port returns the identifier's explicit port, or "" when it has none.
func Port(identifier string) string {
	parsed, err := parse(identifier)
	if err != nil {
		return ""
	}
	return parsed.Port()
}

// Scheme returns the identifier's scheme when it is http or https, and https otherwise.
func Scheme(identifier string) string {
	parsed, err := parse(identifier)
	if err != nil {
		return "https"
	}
	switch scheme := strings.ToLower(parsed.Scheme); scheme {
	case "http", "https":
		return scheme
	default:
		return "https"
	}
}

func parse(identifier string) (*url.URL, error) {
	normalized := Normalize(identifier)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	parsed, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	// A scheme-less input with userinfo was another scheme, e.g. mailto:user@host.
	if parsed.User != nil && !strings.Contains(identifier, "://") {
		return nil, fmt.Errorf("%w: %q is not a web address", ErrInvalidIdentifier, identifier)
	}
	return parsed, nil
}

// SanitizeKeyForPNG converts a cache key to a safe filename with .png extension.
func SanitizeKeyForPNG(key CacheKey) string {
	return sanitizeKey(string(key)) + ".png"
}

// sanitizeKey replaces unsafe filesystem characters with underscores.
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer(
		":", "_",
		"/", "_",
		"\\", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "_",
	)
	s := replacer.Replace(key)
	if s == "" || s == "." || s == ".." {
		s = strings.Repeat("_", len(s)+1)
	}
	return s
}
