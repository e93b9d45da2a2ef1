// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"github.com/emberfall/collections"
	"github.com/emberfall/collections/ordered"
)

var _ collections.Cacher[struct{}, struct{}] = (*SizedCache[struct{}, struct{}])(nil)

// SizedCache is an LRU cache bounded by total cost rather than entry count.
// Each entry's cost is computed once by sizeFn when it is stored.
//
// SizedCache is not safe for concurrent use.
type SizedCache[K comparable, V any] struct {
	maxSize     int
	currentSize int
	sizeFn      func(K, V) int
	entries     *ordered.Map[K, sizedEntry[V]]
}

type sizedEntry[V any] struct {
	value V
	size  int
}

// NewSized creates a cost-bounded LRU cache. A maxSize of 0 means
// unbounded; a negative maxSize returns ErrInvalidCapacity. A nil sizeFn
// charges every entry a cost of 1, making the cache entry-count bounded.
func NewSized[K comparable, V any](maxSize int, sizeFn func(K, V) int) (*SizedCache[K, V], error) {
	if maxSize < 0 {
		return nil, collections.ErrInvalidCapacity
	}
	if sizeFn == nil {
		sizeFn = func(K, V) int { return 1 }
	}
	return &SizedCache[K, V]{
		maxSize: maxSize,
		sizeFn:  sizeFn,
		entries: ordered.New[K, sizedEntry[V]](),
	}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound. A hit moves
// the entry to the most-recently-used end.
func (c *SizedCache[K, V]) Get(key K) (V, error) {
	e, err := c.entries.Get(key)
	if err != nil {
		var zero V
		return zero, err
	}
	_ = c.entries.MoveToBack(key)
	return e.value, nil
}

// Put inserts or replaces the value stored under key, evicting from the
// least-recently-used end until the total cost fits. An entry whose cost
// alone exceeds the bound empties the cache and is not stored.
func (c *SizedCache[K, V]) Put(key K, value V) {
	entrySize := c.sizeFn(key, value)
	if c.maxSize > 0 && entrySize > c.maxSize {
		c.Flush()
		return
	}

	if old, err := c.entries.Get(key); err == nil {
		c.currentSize -= old.size
		_ = c.entries.Delete(key)
	}

	for c.maxSize > 0 && c.currentSize > c.maxSize-entrySize {
		oldest, err := c.entries.PopFront()
		if err != nil {
			break
		}
		c.currentSize -= oldest.Value.size
	}

	c.entries.Put(key, sizedEntry[V]{value: value, size: entrySize})
	c.currentSize += entrySize
}

// Delete removes the entry stored under key, returning ErrKeyNotFound if
// there is none.
func (c *SizedCache[K, V]) Delete(key K) error {
	e, err := c.entries.Get(key)
	if err != nil {
		return err
	}
	c.currentSize -= e.size
	return c.entries.Delete(key)
}

// Flush removes all entries.
func (c *SizedCache[K, V]) Flush() {
	c.entries.Clear()
	c.currentSize = 0
}

// Len returns the number of entries currently stored.
func (c *SizedCache[K, V]) Len() int {
	return c.entries.Len()
}

// Size returns the total cost of the stored entries.
func (c *SizedCache[K, V]) Size() int {
	return c.currentSize
}

// PortionFilled returns the ratio of cost used to the bound, 0 for an
// unbounded cache.
func (c *SizedCache[K, V]) PortionFilled() float64 {
	if c.maxSize == 0 {
		return 0
	}
	return float64(c.currentSize) / float64(c.maxSize)
}
