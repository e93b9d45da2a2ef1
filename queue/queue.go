// Copyright (C) 2026, Emberfall Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides a thread-safe coalescing FIFO queue.
//
// An element already waiting in the queue is not enqueued a second time, so
// bursts of duplicate items collapse into one. This mirrors event-bus style
// consumers (the inotify API behaves the same way) where replaying a
// duplicate pending event is wasted work.
package queue

import (
	"sync"

	"github.com/emberfall/collections"
	"github.com/emberfall/collections/ordered"
)

// Queue is a bounded FIFO of unique elements. It is the only container in
// this module that is safe for concurrent use: producers and consumers on
// different goroutines need no external locking.
type Queue[T comparable] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	maxSize  int
	items    *ordered.Set[T]
}

// New creates a queue holding at most maxSize waiting elements. A maxSize
// of 0 means unbounded; a negative maxSize returns ErrInvalidCapacity.
func New[T comparable](maxSize int) (*Queue[T], error) {
	if maxSize < 0 {
		return nil, collections.ErrInvalidCapacity
	}
	q := &Queue[T]{
		maxSize: maxSize,
		items:   ordered.NewSet[T](),
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q, nil
}

// Put enqueues item, blocking while the queue is full. If an equal item is
// already waiting, Put coalesces with it and returns immediately.
func (q *Queue[T]) Put(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.items.Has(item) {
			return
		}
		if q.maxSize == 0 || q.items.Len() < q.maxSize {
			break
		}
		q.notFull.Wait()
	}
	q.items.Add(item)
	q.notEmpty.Signal()
}

// TryPut enqueues item without blocking. It returns ErrFull if the queue is
// at capacity, and nil (having enqueued nothing) if an equal item is
// already waiting.
func (q *Queue[T]) TryPut(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Has(item) {
		return nil
	}
	if q.maxSize > 0 && q.items.Len() >= q.maxSize {
		return collections.ErrFull
	}
	q.items.Add(item)
	q.notEmpty.Signal()
	return nil
}

// Get dequeues the oldest waiting element, blocking while the queue is
// empty.
func (q *Queue[T]) Get() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.items.Len() == 0 {
		q.notEmpty.Wait()
	}
	item, _ := q.items.PopFront()
	q.notFull.Signal()
	return item
}

// TryGet dequeues the oldest waiting element without blocking, returning
// ErrEmpty if there is none.
func (q *Queue[T]) TryGet() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	item, err := q.items.PopFront()
	if err != nil {
		var zero T
		return zero, err
	}
	q.notFull.Signal()
	return item, nil
}

// Len returns the number of elements currently waiting.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}
