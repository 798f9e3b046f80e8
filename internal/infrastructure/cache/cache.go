// Package cache is a small in-memory TTL cache keyed by string.
package cache

import (
	"sync"
	"time"

	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache stores values until their TTL elapses. It is safe for concurrent use.
// When clone is set, values are copied on the way in and out so callers
// cannot mutate cached slices.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
	clock   timeutil.Clock
}

// New creates a cache using the system clock.
func New[T any](clone func(T) T) *Cache[T] {
	return NewWithClock(clone, timeutil.NewRealClock())
}

// NewWithClock creates a cache whose expiry is measured against clock.
func NewWithClock[T any](clone func(T) T, clock timeutil.Clock) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		clock:   clock,
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero T
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

// Set stores value under key for ttl.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: c.clock.Now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge removes every expired entry and returns how many were removed.
func (c *Cache[T]) Purge() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}

// CloneSlice is a clone function for slice values.
func CloneSlice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	copy(out, s)
	return out
}
