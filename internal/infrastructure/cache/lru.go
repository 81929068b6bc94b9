// Package cache provides cache implementations for the application layer.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a thread-safe LRU (Least Recently Used) cache bounded by entry count
// and, optionally, by total weight. It implements port.Cache[K, V].
//
// When either bound is exceeded, least recently accessed entries are evicted
// until both hold again. Both Get and Set operations mark an entry as
// recently used.
type LRU[K comparable, V any] struct {
	capacity  int
	maxWeight int64
	weigh     func(V) int64
	onEvict   func(K, V)

	mu     sync.Mutex
	items  map[K]*list.Element
	order  *list.List // Front = most recent, Back = least recent
	weight int64
}

// entry holds a key-value pair in the LRU cache.
type entry[K comparable, V any] struct {
	key    K
	value  V
	weight int64
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithMaxWeight bounds the sum of weigh(value) over all entries.
// A non-positive maxWeight or nil weigh leaves the cache bounded by count only.
func WithMaxWeight[K comparable, V any](maxWeight int64, weigh func(V) int64) Option[K, V] {
	return func(c *LRU[K, V]) {
		if maxWeight <= 0 || weigh == nil {
			return
		}
		c.maxWeight = maxWeight
		c.weigh = weigh
	}
}

// WithOnEvict registers a callback invoked for every entry Set evicts to restore a bound.
// The callback runs with the cache lock held and must not call back into the cache.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// NewLRU creates a new LRU cache with the given capacity.
// Capacity must be positive; if zero or negative, a capacity of 1 is used.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value by key and marks it as recently used.
// Returns the value and true if found, or the zero value and false if not found.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set adds or updates a value in the cache.
// If the key already exists, its value is updated and it's marked as recently used.
// Entries are then evicted from the back until count and weight bounds hold.
// A value heavier than the weight bound on its own is not retained.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.weightOf(value)

	// Update existing entry
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		c.weight += w - e.weight
		e.value = value
		e.weight = w
		c.order.MoveToFront(elem)
	} else {
		elem := c.order.PushFront(&entry[K, V]{key: key, value: value, weight: w})
		c.items[key] = elem
		c.weight += w
	}

	for c.overLimit() {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		e := c.removeElement(oldest)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
	}
}

// Remove deletes a key from the cache.
// If the key doesn't exist, this is a no-op.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// Len returns the number of items currently in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Weight returns the summed weight of all entries (0 when unweighted).
func (c *LRU[K, V]) Weight() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weight
}

// Clear removes all items from the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
	c.weight = 0
}

func (c *LRU[K, V]) weightOf(value V) int64 {
	if c.weigh == nil {
		return 0
	}
	return c.weigh(value)
}

// overLimit must be called with the lock held.
func (c *LRU[K, V]) overLimit() bool {
	if c.order.Len() > c.capacity {
		return true
	}
	return c.maxWeight > 0 && c.weight > c.maxWeight
}

// removeElement must be called with the lock held.
func (c *LRU[K, V]) removeElement(elem *list.Element) *entry[K, V] {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	c.weight -= e.weight
	return e
}
