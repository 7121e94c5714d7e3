// Package cache is a small in-process TTL cache. Values are cloned on the way in and
// out so callers can never mutate a cached entry.
package cache

import (
	"sync"
	"time"

	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache maps string keys to values of T with a per-entry TTL.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
	clock   timeutil.Clock
}

// New creates a cache. clone may be nil for value types; clock nil means the system clock.
func New[T any](clone func(T) T, clock timeutil.Clock) *Cache[T] {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		clock:   clock,
	}
}

// Get returns a live entry. Expired entries are evicted.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if !c.clock.Now().Before(e.expiry) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expiry.Equal(e.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return c.cloneValue(e.value), true
}

// Set stores value for ttl. A non-positive ttl stores nothing.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: c.clock.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete drops key.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
