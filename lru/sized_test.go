// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberfall/collections"
)

func TestSizedCacheEviction(t *testing.T) {
	require := require.New(t)

	cache, err := NewSized[string, string](10, func(_, v string) int {
		return len(v)
	})
	require.NoError(err)

	cache.Put("a", "aaaa") // cost 4
	cache.Put("b", "bbbb") // cost 4
	cache.Put("c", "cc")   // cost 2, total 10
	require.Equal(3, cache.Len())
	require.Equal(10, cache.Size())
	require.Equal(1.0, cache.PortionFilled())

	// Needs 4 more units: "a" and "b" go, oldest first.
	cache.Put("d", "dddd")
	require.Equal(2, cache.Len())
	_, err = cache.Get("a")
	require.ErrorIs(err, collections.ErrKeyNotFound)
	_, err = cache.Get("b")
	require.ErrorIs(err, collections.ErrKeyNotFound)

	val, err := cache.Get("c")
	require.NoError(err)
	require.Equal("cc", val)
}

func TestSizedCacheGetPromotes(t *testing.T) {
	require := require.New(t)

	cache, err := NewSized[string, int](2, nil)
	require.NoError(err)

	cache.Put("a", 1)
	cache.Put("b", 2)

	_, err = cache.Get("a")
	require.NoError(err)

	cache.Put("c", 3)
	_, err = cache.Get("b")
	require.ErrorIs(err, collections.ErrKeyNotFound)
	_, err = cache.Get("a")
	require.NoError(err)
}

func TestSizedCacheReplaceAdjustsCost(t *testing.T) {
	require := require.New(t)

	cache, err := NewSized[string, string](10, func(_, v string) int {
		return len(v)
	})
	require.NoError(err)

	cache.Put("a", "aaaaaaaa") // cost 8
	cache.Put("a", "aa")       // cost 2
	require.Equal(1, cache.Len())
	require.Equal(2, cache.Size())

	require.NoError(cache.Delete("a"))
	require.Zero(cache.Size())
	require.ErrorIs(cache.Delete("a"), collections.ErrKeyNotFound)
}

func TestSizedCacheOversizedEntry(t *testing.T) {
	require := require.New(t)

	cache, err := NewSized[string, string](4, func(_, v string) int {
		return len(v)
	})
	require.NoError(err)

	cache.Put("a", "aa")

	// An entry that can never fit empties the cache and is dropped.
	cache.Put("big", "bbbbbbbb")
	require.Zero(cache.Len())
	require.Zero(cache.Size())
	_, err = cache.Get("big")
	require.ErrorIs(err, collections.ErrKeyNotFound)
}

func TestSizedCacheInvalidCapacity(t *testing.T) {
	require := require.New(t)

	_, err := NewSized[string, string](-1, nil)
	require.ErrorIs(err, collections.ErrInvalidCapacity)
}
