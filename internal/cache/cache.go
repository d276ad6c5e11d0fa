package cache

import (
	"sync"
	"time"
)

// Entry pairs a cached value with the time it was fetched.
type Entry[T any] struct {
	Value     T
	FetchedAt time.Time
}

// Cache is a string-keyed TTL cache. An entry is valid iff
// now - FetchedAt < ttl. At most one entry exists per key; a refresh
// overwrites the previous entry (last writer wins).
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]Entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Cache with the given freshness window. now is the clock
// used for expiry checks; pass nil for time.Now.
func New[T any](ttl time.Duration, now func() time.Time) *Cache[T] {
	if now == nil {
		now = time.Now
	}
	return &Cache[T]{
		entries: make(map[string]Entry[T]),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value for key if a valid entry exists.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.FetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.Value, true
}

// Put stores value under key, stamped with the current time.
func (c *Cache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry[T]{Value: value, FetchedAt: c.now()}
}

// PurgeExpired removes entries past their freshness window and returns the
// number removed. Expired entries are otherwise only overwritten on the next
// refresh, so a periodic sweep keeps removed symbols from pinning memory.
func (c *Cache[T]) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.FetchedAt) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
