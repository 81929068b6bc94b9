// Package favicon provides favicon fetching and caching infrastructure.
package favicon

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/logging"
)

const (
	// Dial timeout for a single source.
	defaultConnectTimeout = 10 * time.Second
	// Overall HTTP client timeout for a single source.
	defaultRequestTimeout = 15 * time.Second
	// Upper bound on accepted response bodies.
	defaultMaxBodyBytes = 1 << 20
	// User-Agent sent with every request.
	defaultUserAgent = "favicache/1.0"
)

// Fetcher retrieves raw icon bytes for one source candidate.
type Fetcher interface {
	// Fetch performs a single GET against candidate.URL.
	// Every failure wraps ErrSourceUnavailable.
	Fetch(ctx context.Context, candidate entity.SourceCandidate) ([]byte, error)
}

// FetchConfig configures an HTTPFetcher. Zero values select defaults.
type FetchConfig struct {
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	UserAgent      string
}

// HTTPFetcher implements Fetcher over net/http.
type HTTPFetcher struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
}

// NewHTTPFetcher creates a new HTTPFetcher.
func NewHTTPFetcher(cfg FetchConfig) *HTTPFetcher {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
	}
}

// Fetch retrieves icon bytes from candidate.URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, candidate entity.SourceCandidate) ([]byte, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "image/*")

	log.Debug().Str("source", candidate.Name).Str("url", candidate.URL).Msg("fetching favicon")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrSourceUnavailable, resp.StatusCode)
	}

	if resp.ContentLength > f.maxBodyBytes {
		return nil, fmt.Errorf("%w: content length %d exceeds maximum %d bytes",
			ErrSourceUnavailable, resp.ContentLength, f.maxBodyBytes)
	}

	// Read one extra byte to detect bodies over the limit.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrSourceUnavailable, err)
	}
	if int64(len(data)) > f.maxBodyBytes {
		return nil, fmt.Errorf("%w: response body exceeds maximum %d bytes", ErrSourceUnavailable, f.maxBodyBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrSourceUnavailable)
	}

	log.Debug().Str("source", candidate.Name).Int("bytes", len(data)).Msg("favicon fetched")
	return data, nil
}
