// Package cache provides small expiring in-memory caches.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is an expiring LRU. A zero TTL disables caching entirely; Get
// always misses and Set is a no-op.
type Store[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// New creates a cache holding at most size entries for ttl.
func New[K comparable, V any](size int, ttl time.Duration) *Store[K, V] {
	if ttl <= 0 || size <= 0 {
		return &Store[K, V]{}
	}
	return &Store[K, V]{lru: expirable.NewLRU[K, V](size, nil, ttl)}
}

func (c *Store[K, V]) Get(key K) (V, bool) {
	if c == nil || c.lru == nil {
		var zero V
		return zero, false
	}
	return c.lru.Get(key)
}

func (c *Store[K, V]) Set(key K, v V) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(key, v)
}

// Remove drops a single entry.
func (c *Store[K, V]) Remove(key K) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Remove(key)
}

// Purge drops every entry. Called after any mutation of the underlying rows.
func (c *Store[K, V]) Purge() {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *Store[K, V]) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
