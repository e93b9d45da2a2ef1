// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberfall/collections"
)

func TestSetInsertionOrder(t *testing.T) {
	require := require.New(t)

	s := NewSet("c", "a", "b", "a", "c")
	require.Equal(3, s.Len())
	require.Equal([]string{"c", "a", "b"}, s.Values())

	// Re-adding an element keeps its original position.
	s.Add("c")
	require.Equal([]string{"c", "a", "b"}, s.Values())

	s.Add("d")
	require.Equal([]string{"c", "a", "b", "d"}, s.Values())
}

func TestSetMembership(t *testing.T) {
	require := require.New(t)

	s := NewSet(1, 2, 3)
	require.True(s.Has(2))
	require.False(s.Has(9))

	require.NoError(s.Delete(2))
	require.ErrorIs(s.Delete(2), collections.ErrKeyNotFound)
	require.False(s.Has(2))

	require.False(s.Discard(2))
	require.True(s.Discard(3))
	require.Equal([]int{1}, s.Values())
}

func TestSetPops(t *testing.T) {
	require := require.New(t)

	s := NewSet("a", "b", "c")

	front, err := s.PopFront()
	require.NoError(err)
	require.Equal("a", front)

	back, err := s.PopBack()
	require.NoError(err)
	require.Equal("c", back)

	s.Clear()
	_, err = s.PopFront()
	require.ErrorIs(err, collections.ErrEmpty)
	_, err = s.PopBack()
	require.ErrorIs(err, collections.ErrEmpty)
}

func TestSetAlgebra(t *testing.T) {
	require := require.New(t)

	a := NewSet(1, 2, 3)
	b := NewSet(3, 4)

	require.Equal([]int{1, 2, 3, 4}, a.Union(b).Values())
	require.Equal([]int{3}, a.Intersection(b).Values())
	require.Equal([]int{1, 2}, a.Difference(b).Values())

	// The inputs are untouched.
	require.Equal([]int{1, 2, 3}, a.Values())
	require.Equal([]int{3, 4}, b.Values())
}

func TestSetEqual(t *testing.T) {
	require := require.New(t)

	require.True(EqualSets(NewSet(1, 2), NewSet(1, 2)))
	require.False(EqualSets(NewSet(1, 2), NewSet(2, 1)))
	require.False(EqualSets(NewSet(1, 2), NewSet(1, 2, 3)))
}

func TestSetIteration(t *testing.T) {
	require := require.New(t)

	s := NewSet(10, 20, 30)
	var elements []int
	for e := range s.All() {
		elements = append(elements, e)
	}
	require.Equal([]int{10, 20, 30}, elements)
}
