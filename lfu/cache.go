// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lfu provides a least-frequently-used cache.
package lfu

import (
	"github.com/emberfall/collections"
	"github.com/emberfall/collections/ordered"
)

var _ collections.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// entry carries the stored value, its use count and an insertion sequence
// number. The sequence number breaks count ties deterministically: among
// equally infrequent entries the oldest-inserted one is evicted first.
type entry[V any] struct {
	value V
	count uint64
	seq   uint64
}

// Cache is an LFU cache. Reads increment a per-key use count; inserting
// past capacity evicts the entries with the lowest counts. New entries
// start at count 0, and updating an existing key leaves its count alone.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	nextSeq  uint64
	entries  map[K]*entry[V]
}

// New creates an LFU cache holding at most capacity entries. A capacity of
// 0 means unbounded; a negative capacity returns ErrInvalidCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 0 {
		return nil, collections.ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*entry[V]),
	}, nil
}

// NewFromPairs creates an LFU cache primed with the given pairs, all at
// use count 0.
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

// Get returns the value stored under key, or ErrKeyNotFound. A hit
// increments the key's use count by one.
func (c *Cache[K, V]) Get(key K) (V, error) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, collections.ErrKeyNotFound
	}
	e.count++
	return e.value, nil
}

// Put inserts or replaces the value stored under key. An update keeps the
// existing use count. Inserting a new key past capacity evicts the
// lowest-count entries (oldest-inserted first among ties) until the cache
// is back at capacity; for a single insertion that is exactly one eviction.
//
// Because new entries start at count 0, a new key inserted while every
// resident entry has been read at least once is itself the least frequent
// and is evicted immediately: the insertion leaves the cache unchanged.
func (c *Cache[K, V]) Put(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		return
	}
	c.entries[key] = &entry[V]{value: value, seq: c.nextSeq}
	c.nextSeq++
	for c.capacity > 0 && len(c.entries) > c.capacity {
		c.evictLeastFrequent()
	}
}

// evictLeastFrequent removes the entry with the lowest (count, seq).
func (c *Cache[K, V]) evictLeastFrequent() {
	var (
		victim *entry[V]
		key    K
	)
	for k, e := range c.entries {
		if victim == nil ||
			e.count < victim.count ||
			(e.count == victim.count && e.seq < victim.seq) {
			victim = e
			key = k
		}
	}
	if victim != nil {
		delete(c.entries, key)
	}
}

// Delete removes both the value and its use count, returning
// ErrKeyNotFound if the key is absent.
func (c *Cache[K, V]) Delete(key K) error {
	if _, ok := c.entries[key]; !ok {
		return collections.ErrKeyNotFound
	}
	delete(c.entries, key)
	return nil
}

// Flush removes all entries and counts.
func (c *Cache[K, V]) Flush() {
	c.entries = make(map[K]*entry[V])
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Cap returns the configured capacity, 0 meaning unbounded.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Has reports whether key is present without touching its use count.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Count returns the current use count for key, or 0 if the key is absent.
func (c *Cache[K, V]) Count(key K) uint64 {
	if e, ok := c.entries[key]; ok {
		return e.count
	}
	return 0
}

// PortionFilled returns the fraction of the capacity in use, 0 for an
// unbounded cache.
func (c *Cache[K, V]) PortionFilled() float64 {
	if c.capacity == 0 {
		return 0
	}
	return float64(len(c.entries)) / float64(c.capacity)
}
