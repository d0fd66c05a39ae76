// Package cache provides caching utilities for the MCP server.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// MovementCache is a thread-safe LRU cache of movement detail payloads keyed
// by movement ID. Movements are immutable once booked, so entries never expire.
type MovementCache struct {
	cache *lru.Cache[string, any]
}

// NewMovementCache creates a new LRU cache with the specified maximum number of items.
func NewMovementCache(maxItems int) (*MovementCache, error) {
	c, err := lru.New[string, any](maxItems)
	if err != nil {
		return nil, err
	}
	return &MovementCache{cache: c}, nil
}

// Get retrieves a movement from the cache by its ID.
func (c *MovementCache) Get(movementID string) (any, bool) {
	return c.cache.Get(movementID)
}

// Put adds or updates a movement in the cache.
func (c *MovementCache) Put(movementID string, movement any) {
	c.cache.Add(movementID, movement)
}

// Len returns the current number of items in the cache.
func (c *MovementCache) Len() int {
	return c.cache.Len()
}

// Purge drops every cached movement, e.g. after switching sessions.
func (c *MovementCache) Purge() {
	c.cache.Purge()
}
