// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

var _ Cacher[struct{}, struct{}] = (*Unbounded[struct{}, struct{}])(nil)

// Unbounded is a plain map-backed Cacher that never evicts. It is the
// backend the memoize package uses when no size limit is requested.
type Unbounded[K comparable, V any] struct {
	items map[K]V
}

// NewUnbounded creates an empty unbounded cache.
func NewUnbounded[K comparable, V any]() *Unbounded[K, V] {
	return &Unbounded[K, V]{
		items: make(map[K]V),
	}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (c *Unbounded[K, V]) Get(key K) (V, error) {
	value, ok := c.items[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return value, nil
}

// Put inserts or replaces the value stored under key.
func (c *Unbounded[K, V]) Put(key K, value V) {
	c.items[key] = value
}

// Delete removes the entry stored under key.
func (c *Unbounded[K, V]) Delete(key K) error {
	if _, ok := c.items[key]; !ok {
		return ErrKeyNotFound
	}
	delete(c.items, key)
	return nil
}

// Flush removes all entries.
func (c *Unbounded[K, V]) Flush() {
	c.items = make(map[K]V)
}

// Len returns the number of entries currently stored.
func (c *Unbounded[K, V]) Len() int {
	return len(c.items)
}
