// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package ordered

import "iter"

// Set is a set that remembers insertion order. It is a thin layer over Map
// with empty values.
//
// Set is not safe for concurrent use.
type Set[T comparable] struct {
	m *Map[T, struct{}]
}

// NewSet creates a set holding the given elements in the order supplied,
// duplicates ignored after their first occurrence.
func NewSet[T comparable](elements ...T) *Set[T] {
	s := &Set[T]{m: New[T, struct{}]()}
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add inserts element if not already present; an existing element keeps its
// position.
func (s *Set[T]) Add(element T) {
	s.m.Put(element, struct{}{})
}

// Has reports whether element is present.
func (s *Set[T]) Has(element T) bool {
	return s.m.Has(element)
}

// Delete removes element, returning collections.ErrKeyNotFound if absent.
func (s *Set[T]) Delete(element T) error {
	return s.m.Delete(element)
}

// Discard removes element if present and reports whether it was.
func (s *Set[T]) Discard(element T) bool {
	return s.m.Delete(element) == nil
}

// PopFront removes and returns the oldest element, or collections.ErrEmpty.
func (s *Set[T]) PopFront() (T, error) {
	p, err := s.m.PopFront()
	return p.Key, err
}

// PopBack removes and returns the newest element, or collections.ErrEmpty.
func (s *Set[T]) PopBack() (T, error) {
	p, err := s.m.PopBack()
	return p.Key, err
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Clear discards all elements in O(1) amortized.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// All returns a lazy iterator over the elements in insertion order. The
// mutation caveats of Map.All apply.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range s.m.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Values returns the elements in insertion order as a new slice.
func (s *Set[T]) Values() []T {
	return s.m.Keys()
}

// Union returns a new set holding the receiver's elements followed by those
// of the others, in first-seen order.
func (s *Set[T]) Union(others ...*Set[T]) *Set[T] {
	result := NewSet(s.Values()...)
	for _, other := range others {
		for e := range other.All() {
			result.Add(e)
		}
	}
	return result
}

// Intersection returns a new set holding the receiver's elements that are
// present in every other set, keeping the receiver's order.
func (s *Set[T]) Intersection(others ...*Set[T]) *Set[T] {
	result := NewSet[T]()
	for e := range s.All() {
		keep := true
		for _, other := range others {
			if !other.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			result.Add(e)
		}
	}
	return result
}

// Difference returns a new set holding the receiver's elements that are
// present in none of the other sets, keeping the receiver's order.
func (s *Set[T]) Difference(others ...*Set[T]) *Set[T] {
	result := NewSet[T]()
	for e := range s.All() {
		skip := false
		for _, other := range others {
			if other.Has(e) {
				skip = true
				break
			}
		}
		if !skip {
			result.Add(e)
		}
	}
	return result
}

// EqualSets reports whether a and b hold the same elements in the same
// insertion order.
func EqualSets[T comparable](a, b *Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bn := b.m.root.next
	for an := a.m.root.next; an != a.m.root; an = an.next {
		if an.key != bn.key {
			return false
		}
		bn = bn.next
	}
	return true
}
