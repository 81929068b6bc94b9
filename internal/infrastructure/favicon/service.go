package favicon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/service"
	domainurl "github.com/bnema/favicache/internal/domain/url"
	"github.com/bnema/favicache/internal/logging"
	"github.com/bnema/favicache/internal/metrics"
)

var _ service.FaviconService = (*Service)(nil)

// Config holds the cache settings used by NewService.
type Config struct {
	// CacheDir is the disk tier directory. Required.
	CacheDir         string
	MemoryMaxEntries int
	MemoryMaxBytes   int64
	IconSize         int
	Sources          SourceConfig
}

// Service implements the domain FaviconService interface.
// It sequences the memory tier, the disk tier and the network source chain,
// and writes fetched icons through to both tiers.
type Service struct {
	memory     *MemoryStore
	disk       *DiskStore
	sources    *SourceChain
	fetcher    Fetcher
	normalizer *Normalizer

	// flights coalesces concurrent misses for the same key.
	flights singleflight.Group
}

// NewService creates a new favicon service. The disk directory is created if absent.
func NewService(cfg Config, fetcher Fetcher) (*Service, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher", ErrNilDependency)
	}

	disk, err := NewDiskStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	return &Service{
		memory:     NewMemoryStore(cfg.MemoryMaxEntries, cfg.MemoryMaxBytes),
		disk:       disk,
		sources:    NewSourceChain(cfg.Sources),
		fetcher:    fetcher,
		normalizer: NewNormalizer(cfg.IconSize),
	}, nil
}

// FetchIcon returns canonical PNG bytes for the identifier's host.
// Checks memory cache, then disk cache, then the network source chain.
func (s *Service) FetchIcon(ctx context.Context, identifier string) ([]byte, bool) {
	key, err := domainurl.Key(identifier)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("identifier", identifier).Msg("cannot derive favicon key")
		return nil, false
	}
	ctx = logging.WithHost(ctx, key.String())

	if data, ok := s.lookup(ctx, key.String()); ok {
		return data, true
	}

	scheme, port := domainurl.Scheme(identifier), domainurl.Port(identifier)
	// The flight outlives any single caller; each caller stops waiting on its own context.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan(key.String(), func() (any, error) {
		return s.fetchAndStore(flightCtx, key.String(), scheme, port), nil
	})

	select {
	case res := <-ch:
		// Coalesced callers share res.Val.
		data, _ := res.Val.([]byte)
		if len(data) == 0 {
			return nil, false
		}
		return bytes.Clone(data), true
	case <-ctx.Done():
		return nil, false
	}
}

// GetCached returns icon bytes only if already cached (no network fetch).
func (s *Service) GetCached(identifier string) ([]byte, bool) {
	key, err := domainurl.Key(identifier)
	if err != nil {
		return nil, false
	}
	return s.lookup(context.Background(), key.String())
}

// Forget drops the identifier's icon from both tiers. Returns false when
// the identifier has no host.
func (s *Service) Forget(ctx context.Context, identifier string) bool {
	key, err := domainurl.Key(identifier)
	if err != nil {
		return false
	}
	s.memory.Remove(key.String())
	s.disk.Remove(ctx, key.String())
	logging.FromContext(ctx).Debug().Str("key", key.String()).Msg("favicon forgotten")
	return true
}

// ClearCache empties both tiers.
func (s *Service) ClearCache(ctx context.Context) {
	s.memory.Clear()
	s.disk.Clear(ctx)
	logging.FromContext(ctx).Info().Str("dir", s.disk.Dir()).Msg("favicon cache cleared")
}

// ExtractDominantColor decodes data and returns its accent color.
func (s *Service) ExtractDominantColor(data []byte) (entity.Color, bool) {
	img, err := Decode(data)
	if err != nil {
		return entity.Color{}, false
	}
	return ExtractDominantColor(img), true
}

// DiskPath returns the path of the identifier's cached PNG, or "" when
// the identifier is invalid or nothing is stored yet.
func (s *Service) DiskPath(identifier string) string {
	key, err := domainurl.Key(identifier)
	if err != nil || !s.disk.Has(key.String()) {
		return ""
	}
	return s.disk.PathFor(key.String())
}

// Stats reports memory tier occupancy.
func (s *Service) Stats() service.FaviconStats {
	return service.FaviconStats{
		MemoryEntries: s.memory.Len(),
		MemoryBytes:   s.memory.Bytes(),
	}
}

// Close releases resources. The service holds no background workers.
func (s *Service) Close() {}

// lookup checks the memory tier, then the disk tier, promoting disk hits.
// The returned bytes are a private copy of the cached entry.
func (s *Service) lookup(ctx context.Context, key string) ([]byte, bool) {
	if entry, ok := s.memory.Get(key); ok {
		metrics.RecordCacheLookup(metrics.TierMemory, metrics.ResultHit)
		return bytes.Clone(entry.Data), true
	}
	metrics.RecordCacheLookup(metrics.TierMemory, metrics.ResultMiss)

	stored := s.disk.Read(ctx, key)
	if stored == nil {
		metrics.RecordCacheLookup(metrics.TierDisk, metrics.ResultMiss)
		return nil, false
	}

	entry, err := s.entryFromDisk(key, stored)
	if err != nil {
		metrics.RecordCacheLookup(metrics.TierDisk, metrics.ResultInvalid)
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("dropping corrupt cached favicon")
		s.disk.Remove(ctx, key)
		return nil, false
	}

	metrics.RecordCacheLookup(metrics.TierDisk, metrics.ResultHit)
	s.memory.Put(entry)
	return bytes.Clone(entry.Data), true
}

// entryFromDisk validates stored bytes. Files already at the canonical size
// are kept byte for byte; anything else is renormalized.
func (s *Service) entryFromDisk(key string, stored []byte) (entity.CachedImage, error) {
	img, err := Decode(stored)
	if err != nil {
		return entity.CachedImage{}, err
	}
	size := s.normalizer.Size()
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		return newEntry(key, img, stored), nil
	}

	img, data, err := s.normalizer.Normalize(stored)
	if err != nil {
		return entity.CachedImage{}, err
	}
	return newEntry(key, img, data), nil
}

// fetchAndStore walks the source chain and writes the first usable icon
// through to disk and memory. Returns nil when every source fails.
func (s *Service) fetchAndStore(ctx context.Context, key, scheme, port string) []byte {
	log := logging.FromContext(ctx)

	// A flight that finished just before this one started may have filled the cache.
	if entry, ok := s.memory.Get(key); ok {
		return entry.Data
	}

	start := time.Now()
	defer func() { metrics.ObserveFetch(time.Since(start)) }()

	for _, candidate := range s.sources.Build(key, scheme, port) {
		raw, err := s.fetcher.Fetch(ctx, candidate)
		if err != nil {
			metrics.RecordSourceAttempt(candidate.Name, metrics.ResultFailure)
			log.Debug().Err(err).Str("source", candidate.Name).Msg("favicon source failed")
			continue
		}

		img, data, err := s.normalizer.Normalize(raw)
		if err != nil {
			metrics.RecordSourceAttempt(candidate.Name, metrics.ResultInvalid)
			log.Debug().Err(err).Str("source", candidate.Name).Msg("favicon source returned unusable image")
			continue
		}

		metrics.RecordSourceAttempt(candidate.Name, metrics.ResultSuccess)
		s.disk.Write(ctx, key, data)
		s.memory.Put(newEntry(key, img, data))

		log.Debug().Str("source", candidate.Name).Int("bytes", len(data)).Msg("favicon cached")
		return data
	}

	log.Debug().Msg("no favicon source succeeded")
	return nil
}

func newEntry(key string, img image.Image, data []byte) entity.CachedImage {
	b := img.Bounds()
	return entity.CachedImage{
		Key:   key,
		Image: img,
		Data:  data,
		Size:  int64(len(data)) + int64(b.Dx()*b.Dy()*4),
	}
}
