// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memoize wraps functions so repeated calls with equal arguments
// reuse a previously computed result. Any collections.Cacher works as the
// backing store, so results can be kept unbounded or bounded by recency
// (lru) or frequency (lfu).
package memoize

import (
	"github.com/emberfall/collections"
)

// Func memoizes a single-argument function. The wrapper imposes no purity:
// it simply replays whatever was last stored for an equal key, so callers
// are responsible for fn being deterministic where that matters.
type Func[K comparable, V any] struct {
	cache collections.Cacher[K, V]
	fn    func(K) (V, error)
}

// Wrap memoizes fn using the given cache.
func Wrap[K comparable, V any](cache collections.Cacher[K, V], fn func(K) (V, error)) *Func[K, V] {
	return &Func[K, V]{cache: cache, fn: fn}
}

// New memoizes fn with an unbounded cache.
func New[K comparable, V any](fn func(K) (V, error)) *Func[K, V] {
	return Wrap(collections.NewUnbounded[K, V](), fn)
}

// Call returns the cached result for key, computing and storing it on a
// miss. Errors from fn propagate unchanged and are never cached: a failed
// call leaves the cache untouched, so the next identical call computes
// again.
func (f *Func[K, V]) Call(key K) (V, error) {
	if value, err := f.cache.Get(key); err == nil {
		return value, nil
	}
	value, err := f.fn(key)
	if err != nil {
		var zero V
		return zero, err
	}
	f.cache.Put(key, value)
	return value, nil
}

// Clear empties the cache without discarding the wrapped function.
func (f *Func[K, V]) Clear() {
	f.cache.Flush()
}

// Key2 is the composite cache key used by Func2.
type Key2[A, B comparable] struct {
	A A
	B B
}

// Func2 memoizes a two-argument function via a composite comparable key.
type Func2[A, B comparable, V any] struct {
	inner *Func[Key2[A, B], V]
}

// Wrap2 memoizes fn using the given cache.
func Wrap2[A, B comparable, V any](
	cache collections.Cacher[Key2[A, B], V],
	fn func(A, B) (V, error),
) *Func2[A, B, V] {
	return &Func2[A, B, V]{
		inner: Wrap(cache, func(k Key2[A, B]) (V, error) {
			return fn(k.A, k.B)
		}),
	}
}

// New2 memoizes fn with an unbounded cache.
func New2[A, B comparable, V any](fn func(A, B) (V, error)) *Func2[A, B, V] {
	return Wrap2(collections.NewUnbounded[Key2[A, B], V](), fn)
}

// Call returns the cached result for (a, b), computing it on a miss.
func (f *Func2[A, B, V]) Call(a A, b B) (V, error) {
	return f.inner.Call(Key2[A, B]{A: a, B: b})
}

// Clear empties the cache without discarding the wrapped function.
func (f *Func2[A, B, V]) Clear() {
	f.inner.Clear()
}
