// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/collections"
	"github.com/emberfall/collections/ordered"
)

func TestCacheEviction(t *testing.T) {
	require := require.New(t)

	cache, err := New[int, string](2)
	require.NoError(err)

	cache.Put(1, "a")
	cache.Put(2, "b")
	cache.Put(3, "c")

	// Key 1 was the least recently touched when 3 arrived.
	require.Equal(2, cache.Len())
	_, err = cache.Get(1)
	require.ErrorIs(err, collections.ErrKeyNotFound)
	require.Equal([]ordered.Pair[int, string]{
		{Key: 2, Value: "b"},
		{Key: 3, Value: "c"},
	}, cache.Items())
}

func TestCacheGetPromotes(t *testing.T) {
	require := require.New(t)

	cache, err := New[int, string](2)
	require.NoError(err)

	cache.Put(1, "a")
	cache.Put(2, "b")

	val, err := cache.Get(1)
	require.NoError(err)
	require.Equal("a", val)

	// 1 was touched after 2, so 2 is the eviction victim.
	cache.Put(3, "c")
	require.Equal([]ordered.Pair[int, string]{
		{Key: 1, Value: "a"},
		{Key: 3, Value: "c"},
	}, cache.Items())
}

func TestCachePutPromotes(t *testing.T) {
	require := require.New(t)

	cache, err := New[int, string](2)
	require.NoError(err)

	cache.Put(1, "a")
	cache.Put(2, "b")
	cache.Put(1, "a2")
	cache.Put(3, "c")

	// Updating 1 touched it, so 2 was evicted.
	_, err = cache.Get(2)
	require.ErrorIs(err, collections.ErrKeyNotFound)

	val, err := cache.Get(1)
	require.NoError(err)
	require.Equal("a2", val)
}

func TestCacheUnbounded(t *testing.T) {
	require := require.New(t)

	cache, err := New[int, int](0)
	require.NoError(err)

	for i := 0; i < 1000; i++ {
		cache.Put(i, i)
	}
	require.Equal(1000, cache.Len())
	require.Zero(cache.PortionFilled())
}

func TestCacheInvalidCapacity(t *testing.T) {
	require := require.New(t)

	_, err := New[int, int](-1)
	require.ErrorIs(err, collections.ErrInvalidCapacity)
}

func TestCacheDeleteAndFlush(t *testing.T) {
	require := require.New(t)

	cache, err := New[string, int](3)
	require.NoError(err)

	cache.Put("a", 1)
	cache.Put("b", 2)

	require.NoError(cache.Delete("a"))
	require.ErrorIs(cache.Delete("a"), collections.ErrKeyNotFound)
	require.Equal(1, cache.Len())

	cache.Flush()
	require.Zero(cache.Len())
	require.Zero(cache.PortionFilled())
	require.Equal(3, cache.Cap())
}

func TestCacheOnEvict(t *testing.T) {
	require := require.New(t)

	var evicted []string
	cache, err := NewWithOnEvict[string, string](2, func(k, _ string) {
		evicted = append(evicted, k)
	})
	require.NoError(err)

	cache.Put("x", "value-x")
	cache.Put("y", "value-y")
	cache.Put("z", "value-z")

	require.Equal([]string{"x"}, evicted)

	// Explicit removal is not an eviction.
	require.NoError(cache.Delete("y"))
	cache.Flush()
	require.Equal([]string{"x"}, evicted)
}

func TestCacheFromPairs(t *testing.T) {
	require := require.New(t)

	cache, err := NewFromPairs(2, []ordered.Pair[int, string]{
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
		{Key: 3, Value: "c"},
	})
	require.NoError(err)
	require.Equal([]ordered.Pair[int, string]{
		{Key: 2, Value: "b"},
		{Key: 3, Value: "c"},
	}, cache.Items())

	_, err = NewFromPairs[int, string](-1, nil)
	require.ErrorIs(err, collections.ErrInvalidCapacity)
}

func TestCacheOpaqueIDKeys(t *testing.T) {
	require := require.New(t)

	cache, err := New[ids.ID, int](2)
	require.NoError(err)

	id1 := ids.GenerateTestID()
	id2 := ids.GenerateTestID()
	id3 := ids.GenerateTestID()

	cache.Put(id1, 1)
	cache.Put(id2, 2)

	val, err := cache.Get(id1)
	require.NoError(err)
	require.Equal(1, val)

	cache.Put(id3, 3)
	_, err = cache.Get(id2)
	require.ErrorIs(err, collections.ErrKeyNotFound)

	val, err = cache.Get(id3)
	require.NoError(err)
	require.Equal(3, val)
}
