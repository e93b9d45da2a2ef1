// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import "errors"

var (
	// ErrKeyNotFound is returned by Get, Delete and the ordered-map move
	// operations when the requested key is not present.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrEmpty is returned when popping from a container with no entries.
	ErrEmpty = errors.New("collections: container is empty")

	// ErrInvalidCapacity is returned at construction time when a negative
	// capacity is supplied.
	ErrInvalidCapacity = errors.New("collections: capacity must not be negative")

	// ErrFull is returned by non-blocking puts on a bounded queue that is
	// at capacity.
	ErrFull = errors.New("collections: queue is full")
)
