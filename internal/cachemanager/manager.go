// Package cachemanager wraps an in-memory TTL cache with typed access.
package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/folio/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Cache is a typed in-memory cache with expiration.
type Cache[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// New initializes a cache for the given use case.
func New[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatRender, "wrong type assertion when getting value", "useCase", c.useCase, "key", key)
		return zero, false
	}

	return v, true
}

// Set stores an item with the default expiration.
func (c *Cache[V]) Set(key string, value V) {
	c.cache.Set(key, value, gocache.DefaultExpiration)
}

// Delete removes an item from the cache.
func (c *Cache[V]) Delete(key string) {
	c.cache.Delete(key)
}

// Flush removes all items from the cache.
func (c *Cache[V]) Flush() {
	c.cache.Flush()
}

// Count returns the number of cached items, including expired ones not yet
// cleaned up.
func (c *Cache[V]) Count() int {
	return c.cache.ItemCount()
}
