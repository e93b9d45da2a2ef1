// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collections provides ordered containers and the bounded caches
// built on top of them: an insertion-order-preserving map, an ordered set,
// LRU and LFU caches, a memoizing function wrapper and a coalescing queue.
//
// The root package holds what the subpackages share: the Cacher contract,
// the error taxonomy and the unbounded map-backed cache.
//
// Except for queue.Queue, nothing in this module locks internally. Callers
// sharing a container across goroutines must serialize access themselves.
package collections

// Cacher is the minimal contract a cache-like container must satisfy to be
// usable by the memoize package. lru.Cache, lfu.Cache, lru.SizedCache and
// Unbounded all implement it.
type Cacher[K comparable, V any] interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	// Implementations may update internal bookkeeping (recency, use
	// counts) on a hit, so Get is not necessarily a pure read.
	Get(key K) (V, error)

	// Put inserts or replaces the value stored under key, evicting other
	// entries if a capacity bound requires it. Put never fails.
	Put(key K, value V)

	// Delete removes the entry stored under key, returning ErrKeyNotFound
	// if there is none.
	Delete(key K) error

	// Flush removes all entries.
	Flush()

	// Len returns the number of entries currently stored.
	Len() int
}
