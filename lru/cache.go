// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides least-recently-used caches built on ordered.Map.
package lru

import (
	"github.com/emberfall/collections"
	"github.com/emberfall/collections/ordered"
)

var _ collections.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache is an LRU cache. The backing ordered map encodes recency: the front
// holds the least recently used entry, the back the most recently used.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	entries  *ordered.Map[K, V]
	onEvict  func(K, V)
}

// New creates an LRU cache holding at most capacity entries. A capacity of
// 0 means unbounded; a negative capacity returns ErrInvalidCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithOnEvict[K, V](capacity, nil)
}

// NewWithOnEvict creates an LRU cache that calls onEvict for every entry
// removed by the cache itself to enforce the capacity bound. Explicit
// Delete and Flush do not trigger the callback.
func NewWithOnEvict[K comparable, V any](capacity int, onEvict func(K, V)) (*Cache[K, V], error) {
	if capacity < 0 {
		return nil, collections.ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  ordered.New[K, V](),
		onEvict:  onEvict,
	}, nil
}

// NewFromPairs creates an LRU cache primed with the given pairs, inserted
// in order (so the last pair is the most recently used).
func NewFromPairs[K comparable, V any](capacity int, pairs []ordered.Pair[K, V]) (*Cache[K, V], error) {
	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		c.Put(p.Key, p.Value)
	}
	return c, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
//
// Get is not a pure read: a hit moves the entry to the most-recently-used
// end before the value is returned.
func (c *Cache[K, V]) Get(key K) (V, error) {
	value, err := c.entries.Get(key)
	if err != nil {
		var zero V
		return zero, err
	}
	// Cannot fail: the key was just found.
	_ = c.entries.MoveToBack(key)
	return value, nil
}

// Put inserts or replaces the value stored under key and marks the entry
// most recently used. Inserting a new key at capacity first evicts the
// entry at the least-recently-used end; exactly one entry is ever evicted
// per insertion.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.entries.Has(key) {
		c.entries.Put(key, value)
		_ = c.entries.MoveToBack(key)
		return
	}
	if c.capacity > 0 && c.entries.Len() >= c.capacity {
		if oldest, err := c.entries.PopFront(); err == nil && c.onEvict != nil {
			c.onEvict(oldest.Key, oldest.Value)
		}
	}
	c.entries.Put(key, value)
}

// Delete removes the entry stored under key, returning ErrKeyNotFound if
// there is none.
func (c *Cache[K, V]) Delete(key K) error {
	return c.entries.Delete(key)
}

// Flush removes all entries.
func (c *Cache[K, V]) Flush() {
	c.entries.Clear()
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int {
	return c.entries.Len()
}

// Cap returns the configured capacity, 0 meaning unbounded.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Items returns the entries ordered least- to most-recently used.
func (c *Cache[K, V]) Items() []ordered.Pair[K, V] {
	return c.entries.Items()
}

// PortionFilled returns the fraction of the capacity in use, 0 for an
// unbounded cache.
func (c *Cache[K, V]) PortionFilled() float64 {
	if c.capacity == 0 {
		return 0
	}
	return float64(c.entries.Len()) / float64(c.capacity)
}
