package favicon

import (
	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/infrastructure/cache"
	"github.com/bnema/favicache/internal/metrics"
)

const (
	// DefaultMemoryMaxEntries bounds the number of decoded icons held in memory.
	DefaultMemoryMaxEntries = 100
	// DefaultMemoryMaxBytes bounds the approximate bytes held in memory.
	DefaultMemoryMaxBytes = 50 << 20
)

// MemoryStore is the bounded in-process tier of decoded icons.
// Entries are evicted least-recently-used first once either limit is exceeded.
type MemoryStore struct {
	lru port.Cache[string, entity.CachedImage]
}

// NewMemoryStore creates a MemoryStore. Non-positive limits use the defaults.
func NewMemoryStore(maxEntries int, maxBytes int64) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryMaxEntries
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMemoryMaxBytes
	}
	return &MemoryStore{
		lru: cache.NewLRU[string, entity.CachedImage](maxEntries,
			cache.WithMaxWeight[string, entity.CachedImage](maxBytes, func(e entity.CachedImage) int64 {
				return e.Size
			}),
			cache.WithOnEvict[string, entity.CachedImage](func(string, entity.CachedImage) {
				metrics.RecordMemoryEviction()
			}),
		),
	}
}

// Get returns the entry for key and marks it recently used.
func (m *MemoryStore) Get(key string) (entity.CachedImage, bool) {
	return m.lru.Get(key)
}

// Put inserts or replaces entry under entry.Key.
func (m *MemoryStore) Put(entry entity.CachedImage) {
	if entry.Key == "" {
		return
	}
	m.lru.Set(entry.Key, entry)
	m.report()
}

// Remove drops the entry for key, if any.
func (m *MemoryStore) Remove(key string) {
	m.lru.Remove(key)
	m.report()
}

// Clear drops every entry.
func (m *MemoryStore) Clear() {
	m.lru.Clear()
	m.report()
}

// Len returns the number of entries.
func (m *MemoryStore) Len() int {
	return m.lru.Len()
}

// Bytes returns the approximate size of all entries.
func (m *MemoryStore) Bytes() int64 {
	return m.lru.Weight()
}

func (m *MemoryStore) report() {
	metrics.UpdateMemoryMetrics(m.lru.Len(), m.lru.Weight())
}
