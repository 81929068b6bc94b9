package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favicache/internal/application/port"
)

var _ port.Cache[string, int] = (*LRU[string, int])(nil)

func byteLen(b []byte) int64 { return int64(len(b)) }

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, int](3)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = cache.Get("notfound")
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	assert.Equal(t, 3, cache.Len())
	assert.Equal(t, int64(0), cache.Weight())
}

func TestLRU_GetUpdatesRecency(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Set("a", 1)
	cache.Set("b", 2)
	// Order: [b, a]

	cache.Get("a")
	// Order: [a, b]

	cache.Set("c", 3)

	_, ok := cache.Get("a")
	assert.True(t, ok, "a should still exist")

	_, ok = cache.Get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRU_UpdateExisting(t *testing.T) {
	cache := NewLRU[string, []byte](2, WithMaxWeight[string, []byte](100, byteLen))

	cache.Set("a", make([]byte, 10))
	cache.Set("b", make([]byte, 20))
	cache.Set("a", make([]byte, 40))

	val, ok := cache.Get("a")
	require.True(t, ok)
	assert.Len(t, val, 40)
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, int64(60), cache.Weight())
}

func TestLRU_Remove(t *testing.T) {
	cache := NewLRU[string, []byte](3, WithMaxWeight[string, []byte](100, byteLen))

	cache.Set("a", make([]byte, 5))
	cache.Set("b", make([]byte, 7))

	cache.Remove("b")
	cache.Remove("notfound")

	_, ok := cache.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, int64(5), cache.Weight())
}

func TestLRU_Clear(t *testing.T) {
	cache := NewLRU[string, []byte](3, WithMaxWeight[string, []byte](100, byteLen))

	cache.Set("a", make([]byte, 5))
	cache.Set("b", make([]byte, 7))
	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, int64(0), cache.Weight())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestLRU_ZeroCapacity(t *testing.T) {
	cache := NewLRU[string, int](0)

	cache.Set("a", 1)
	cache.Set("b", 2)

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestLRU_CountBound(t *testing.T) {
	const capacity = 100
	cache := NewLRU[string, int](capacity)

	for i := 0; i < capacity*3; i++ {
		cache.Set(fmt.Sprintf("host-%d.test", i), i)
		require.LessOrEqual(t, cache.Len(), capacity)
	}

	assert.Equal(t, capacity, cache.Len())
	_, ok := cache.Get("host-0.test")
	assert.False(t, ok, "oldest key should be gone")
	_, ok = cache.Get(fmt.Sprintf("host-%d.test", capacity*3-1))
	assert.True(t, ok, "newest key should be present")
}

func TestLRU_WeightBound(t *testing.T) {
	cache := NewLRU[string, []byte](10, WithMaxWeight[string, []byte](100, byteLen))

	cache.Set("a", make([]byte, 40))
	cache.Set("b", make([]byte, 40))
	cache.Get("a")
	// Order: [a, b]; adding c (40) reaches 120 and must evict b
	cache.Set("c", make([]byte, 40))

	assert.LessOrEqual(t, cache.Weight(), int64(100))
	_, ok := cache.Get("b")
	assert.False(t, ok, "b should have been evicted by weight")
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestLRU_OversizedValueNotRetained(t *testing.T) {
	cache := NewLRU[string, []byte](10, WithMaxWeight[string, []byte](100, byteLen))

	cache.Set("small", make([]byte, 10))
	cache.Set("huge", make([]byte, 500))

	_, ok := cache.Get("huge")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len(), "making room for an oversized value drains the cache")
	assert.Equal(t, int64(0), cache.Weight())
}

func TestLRU_OnEvict(t *testing.T) {
	var evicted []string
	cache := NewLRU[string, int](2, WithOnEvict[string, int](func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)
	cache.Remove("b")
	cache.Clear()

	assert.Equal(t, []string{"a"}, evicted, "only capacity evictions are reported")
}

func TestLRU_InvalidWeightOptionIgnored(t *testing.T) {
	cache := NewLRU[string, []byte](2, WithMaxWeight[string, []byte](0, byteLen))

	cache.Set("a", make([]byte, 1000))

	_, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int64(0), cache.Weight())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := NewLRU[int, []byte](50, WithMaxWeight[int, []byte](1000, byteLen))
	var wg sync.WaitGroup

	for i := 0; i < 200; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			cache.Set(i, make([]byte, i%30))
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Get(i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Remove(i + 50)
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, cache.Len(), 50)
	require.LessOrEqual(t, cache.Weight(), int64(1000))
}
