// Package service defines domain service interfaces.
//
//go:generate mockery --name=FaviconService --output=mocks --outpkg=mocks --with-expecter
package service

import (
	"context"

	"github.com/bnema/favicache/internal/domain/entity"
)

// FaviconStats reports the memory tier occupancy.
type FaviconStats struct {
	MemoryEntries int
	MemoryBytes   int64
}

// FaviconService provides favicon retrieval and caching operations.
// It works with canonical PNG bytes, leaving rendering to the presentation layer.
type FaviconService interface {
	// FetchIcon returns canonical PNG bytes for the identifier's host.
	// Checks memory cache, then disk cache, then walks the network source chain.
	// A missing icon is reported as false, never as an error.
	FetchIcon(ctx context.Context, identifier string) ([]byte, bool)

	// GetCached returns icon bytes only if already cached (no network fetch).
	GetCached(identifier string) ([]byte, bool)

	// ClearCache empties both cache tiers.
	ClearCache(ctx context.Context)

	// ExtractDominantColor decodes icon bytes and computes their accent color.
	// Returns false only when the bytes are not a decodable image.
	ExtractDominantColor(data []byte) (entity.Color, bool)

	// DiskPath returns the filesystem path where the identifier's icon is cached.
	DiskPath(identifier string) string

	// Stats reports memory tier occupancy.
	Stats() FaviconStats

	// Close releases resources.
	Close()
}
