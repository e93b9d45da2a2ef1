// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package memoize

import (
	"fmt"

	"github.com/spaolacci/murmur3"

	"github.com/emberfall/collections"
)

// HashKey reduces an arbitrary argument list to a 64-bit cache key. Each
// argument is written with its dynamic type and a field-separator byte, so
// HashKey(1, 23) and HashKey(12, 3) hash differently. Two argument lists
// that render identically map to the same key; distinct lists collide only
// with the usual 64-bit hash probability.
func HashKey(args ...any) uint64 {
	h := murmur3.New64()
	for _, arg := range args {
		fmt.Fprintf(h, "%T\x1f%#v\x1e", arg, arg)
	}
	return h.Sum64()
}

// FuncN memoizes a variadic function keyed by HashKey over its arguments.
// It trades the exact-equality guarantee of Func and Func2 for arbitrary
// arity: arguments only need a stable %#v rendering, not comparability.
type FuncN[V any] struct {
	cache collections.Cacher[uint64, V]
	fn    func(...any) (V, error)
}

// WrapN memoizes fn using the given cache.
func WrapN[V any](cache collections.Cacher[uint64, V], fn func(...any) (V, error)) *FuncN[V] {
	return &FuncN[V]{cache: cache, fn: fn}
}

// NewN memoizes fn with an unbounded cache.
func NewN[V any](fn func(...any) (V, error)) *FuncN[V] {
	return WrapN(collections.NewUnbounded[uint64, V](), fn)
}

// Call returns the cached result for args, computing it on a miss. Errors
// are never cached.
func (f *FuncN[V]) Call(args ...any) (V, error) {
	key := HashKey(args...)
	if value, err := f.cache.Get(key); err == nil {
		return value, nil
	}
	value, err := f.fn(args...)
	if err != nil {
		var zero V
		return zero, err
	}
	f.cache.Put(key, value)
	return value, nil
}

// Clear empties the cache without discarding the wrapped function.
func (f *FuncN[V]) Clear() {
	f.cache.Flush()
}
