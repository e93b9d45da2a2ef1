// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ordered provides an insertion-order-preserving map and set.
//
// Map is the primitive the lru package is built on: a hash lookup combined
// with a sentinel-rooted circular doubly-linked list, giving O(1) access,
// O(1) repositioning of any entry and ordered iteration from either end.
package ordered

import (
	"iter"

	"github.com/emberfall/collections"
)

// Pair is a single key/value entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// node is a link in the circular list. The sentinel root is a node whose
// key and value are never read; root.next is the front, root.prev the back.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// Map is a mapping that remembers insertion order. A key that is deleted
// and re-inserted counts as newly inserted and moves to the back.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	root  *node[K, V]
	nodes map[K]*node[K, V]
}

// New creates an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	m := &Map[K, V]{
		nodes: make(map[K]*node[K, V]),
	}
	m.root = &node[K, V]{}
	m.root.prev = m.root
	m.root.next = m.root
	return m
}

// NewFromPairs creates an ordered map from the given pairs. When a key
// occurs more than once the last value wins, but the key keeps the position
// of its first occurrence.
func NewFromPairs[K comparable, V any](pairs []Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return m
}

// Get returns the value stored under key, or collections.ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	n, ok := m.nodes[key]
	if !ok {
		var zero V
		return zero, collections.ErrKeyNotFound
	}
	return n.value, nil
}

// GetDefault returns the value stored under key, or fallback if the key is
// absent.
func (m *Map[K, V]) GetDefault(key K, fallback V) V {
	if n, ok := m.nodes[key]; ok {
		return n.value
	}
	return fallback
}

// Put inserts or replaces the value stored under key. An existing key keeps
// its position; a new key is appended at the back.
func (m *Map[K, V]) Put(key K, value V) {
	if n, ok := m.nodes[key]; ok {
		n.value = value
		return
	}
	n := &node[K, V]{key: key, value: value}
	m.linkBack(n)
	m.nodes[key] = n
}

// Delete removes the entry stored under key, returning
// collections.ErrKeyNotFound if there is none.
func (m *Map[K, V]) Delete(key K) error {
	n, ok := m.nodes[key]
	if !ok {
		return collections.ErrKeyNotFound
	}
	m.unlink(n)
	delete(m.nodes, key)
	return nil
}

// MoveToBack relinks the entry stored under key to the back of the order
// without touching its value. O(1).
func (m *Map[K, V]) MoveToBack(key K) error {
	n, ok := m.nodes[key]
	if !ok {
		return collections.ErrKeyNotFound
	}
	m.unlink(n)
	m.linkBack(n)
	return nil
}

// MoveToFront relinks the entry stored under key to the front of the order
// without touching its value. O(1).
func (m *Map[K, V]) MoveToFront(key K) error {
	n, ok := m.nodes[key]
	if !ok {
		return collections.ErrKeyNotFound
	}
	m.unlink(n)
	m.linkFront(n)
	return nil
}

// PopFront removes and returns the oldest entry, or collections.ErrEmpty.
func (m *Map[K, V]) PopFront() (Pair[K, V], error) {
	return m.pop(m.root.next)
}

// PopBack removes and returns the newest entry, or collections.ErrEmpty.
func (m *Map[K, V]) PopBack() (Pair[K, V], error) {
	return m.pop(m.root.prev)
}

func (m *Map[K, V]) pop(n *node[K, V]) (Pair[K, V], error) {
	if n == m.root {
		return Pair[K, V]{}, collections.ErrEmpty
	}
	m.unlink(n)
	delete(m.nodes, n.key)
	return Pair[K, V]{Key: n.key, Value: n.value}, nil
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.nodes[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.nodes)
}

// Clear discards all entries. The old ring and lookup table are dropped
// wholesale rather than unlinked one by one, so this is O(1) amortized.
func (m *Map[K, V]) Clear() {
	m.root = &node[K, V]{}
	m.root.prev = m.root
	m.root.next = m.root
	m.nodes = make(map[K]*node[K, V])
}

// All returns a lazy iterator over the entries from front (oldest) to back.
//
// Deleting the key currently being yielded is safe; any other structural
// mutation during iteration leaves which entries are visited unspecified,
// though the map itself is never corrupted.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		root := m.root
		for n := root.next; n != root; {
			next := n.next
			if !yield(n.key, n.value) {
				return
			}
			n = next
		}
	}
}

// Backward returns a lazy iterator over the entries from back (newest) to
// front. The mutation caveats of All apply.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		root := m.root
		for n := root.prev; n != root; {
			prev := n.prev
			if !yield(n.key, n.value) {
				return
			}
			n = prev
		}
	}
}

// Keys returns the keys in order as a new slice.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.nodes))
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in key order as a new slice.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.nodes))
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Items returns the entries in order as a new slice.
func (m *Map[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, len(m.nodes))
	for k, v := range m.All() {
		items = append(items, Pair[K, V]{Key: k, Value: v})
	}
	return items
}

// linkBack inserts n immediately before the sentinel.
func (m *Map[K, V]) linkBack(n *node[K, V]) {
	last := m.root.prev
	n.prev = last
	n.next = m.root
	last.next = n
	m.root.prev = n
}

// linkFront inserts n immediately after the sentinel.
func (m *Map[K, V]) linkFront(n *node[K, V]) {
	first := m.root.next
	n.prev = m.root
	n.next = first
	first.prev = n
	m.root.next = n
}

func (m *Map[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	// Point the removed node at the sentinel rather than nil: an iterator
	// that already captured n as its next step then stops at the sentinel
	// instead of dereferencing a nil link.
	n.prev, n.next = m.root, m.root
}

// Equal reports whether a and b hold the same keys in the same order with
// equal values. Order matters: two maps with identical contents inserted in
// different orders are not equal.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bn := b.root.next
	for an := a.root.next; an != a.root; an = an.next {
		if an.key != bn.key || an.value != bn.value {
			return false
		}
		bn = bn.next
	}
	return true
}

// EqualMap reports whether m holds exactly the entries of the plain map
// other, ignoring order.
func EqualMap[K, V comparable](m *Map[K, V], other map[K]V) bool {
	if m.Len() != len(other) {
		return false
	}
	for k, v := range other {
		n, ok := m.nodes[k]
		if !ok || n.value != v {
			return false
		}
	}
	return true
}
