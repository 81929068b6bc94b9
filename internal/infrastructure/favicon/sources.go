package favicon

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/bnema/favicache/internal/domain/entity"
)

const (
	// DuckDuckGo favicon API URL template.
	defaultPrimaryAPI = "https://icons.duckduckgo.com/ip3/%s.ico"
	// Google favicon API URL template (host, size).
	defaultFallbackAPI = "https://www.google.com/s2/favicons?domain=%s&sz=%d"
	// Size requested from the Google API.
	defaultFallbackSize = 64
)

// Source names, used for logging and metric labels.
const (
	SourceDuckDuckGo     = "duckduckgo"
	SourceFaviconICO     = "favicon.ico"
	SourceAppleTouchIcon = "apple-touch-icon"
	SourceGoogle         = "google"
)

// SourceChain builds the ordered list of network locations tried for a host.
// Order is most-reliable-first: a host-keyed icon API, the two well-known
// paths on the site itself, then a redirect-following API last.
type SourceChain struct {
	primaryAPI   string
	fallbackAPI  string
	fallbackSize int
}

// SourceConfig overrides the API templates used by a SourceChain.
// Empty or non-positive fields keep the defaults.
type SourceConfig struct {
	PrimaryAPI   string
	FallbackAPI  string
	FallbackSize int
}

// NewSourceChain creates a SourceChain from cfg.
func NewSourceChain(cfg SourceConfig) *SourceChain {
	sc := &SourceChain{
		primaryAPI:   defaultPrimaryAPI,
		fallbackAPI:  defaultFallbackAPI,
		fallbackSize: defaultFallbackSize,
	}
	if cfg.PrimaryAPI != "" {
		sc.primaryAPI = cfg.PrimaryAPI
	}
	if cfg.FallbackAPI != "" {
		sc.fallbackAPI = cfg.FallbackAPI
	}
	if cfg.FallbackSize > 0 {
		sc.fallbackSize = cfg.FallbackSize
	}
	return sc
}

// Build returns the candidates for host in priority order.
// Returns nil for an empty host. Any scheme other than http is treated as https.
// A non-empty port is kept on the two on-site candidates only; the APIs are keyed by host.
func (sc *SourceChain) Build(host, scheme, port string) []entity.SourceCandidate {
	if host == "" {
		return nil
	}
	if scheme != "http" {
		scheme = "https"
	}

	escaped := url.QueryEscape(host)
	site := scheme + "://" + siteHost(host, port)

	candidates := []entity.SourceCandidate{
		{Name: SourceDuckDuckGo, URL: fmt.Sprintf(sc.primaryAPI, escaped)},
		{Name: SourceFaviconICO, URL: site + "/favicon.ico"},
		{Name: SourceAppleTouchIcon, URL: site + "/apple-touch-icon.png"},
		{Name: SourceGoogle, URL: fmt.Sprintf(sc.fallbackAPI, escaped, sc.fallbackSize)},
	}
	for i := range candidates {
		candidates[i].Priority = i + 1
	}
	return candidates
}

// siteHost formats host and optional port for a URL authority,
// bracketing IPv6 literals.
func siteHost(host, port string) string {
	if port != "" {
		return net.JoinHostPort(host, port)
	}
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}
