package utils

import (
	"sync"
	"time"
)

// Cache holds a single value until its TTL runs out.
type Cache[T any] struct {
	mutex     sync.RWMutex
	value     T
	present   bool
	cachedAt  time.Time
	expiresAt time.Time
	now       func() time.Time
}

type CacheOption[T any] func(*Cache[T])

// WithCacheClock replaces time.Now, mostly for tests.
func WithCacheClock[T any](now func() time.Time) CacheOption[T] {
	return func(c *Cache[T]) { c.now = now }
}

func NewCache[T any](opts ...CacheOption[T]) *Cache[T] {
	c := &Cache[T]{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value for ttl. A non-positive ttl stores nothing readable.
func (c *Cache[T]) Set(value T, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value = value
	c.present = true
	c.cachedAt = c.now()
	c.expiresAt = c.cachedAt.Add(ttl)
}

// Get returns the value while it is fresh.
func (c *Cache[T]) Get() (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var zero T
	if !c.present || !c.now().Before(c.expiresAt) {
		return zero, false
	}
	return c.value, true
}

// CachedAt returns when the current value was stored, zero if empty.
func (c *Cache[T]) CachedAt() time.Time {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cachedAt
}

// TTL returns how long the current value stays fresh.
func (c *Cache[T]) TTL() time.Duration {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if !c.present {
		return 0
	}
	if left := c.expiresAt.Sub(c.now()); left > 0 {
		return left
	}
	return 0
}

func (c *Cache[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero T
	c.value = zero
	c.present = false
	c.cachedAt = time.Time{}
	c.expiresAt = time.Time{}
}
