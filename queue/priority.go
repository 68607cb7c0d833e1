// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "github.com/ava-labs/containers/heap"

// A LessThan implementation has a strict ordering.
type LessThan[T any] interface {
	LessThan(T) bool
}

// A Priority is a priority queue that always serves its least item first. The
// zero value is valid. It wraps a [heap.MinHeap] and exposes methods with the
// same semantics and complexity.
type Priority[T LessThan[T]] struct {
	h *heap.MinHeap[T]
}

func (p *Priority[T]) minHeap() *heap.MinHeap[T] {
	if p.h == nil {
		p.h = heap.NewFunc(func(a, b T) bool {
			return a.LessThan(b)
		})
	}
	return p.h
}

// Len returns the number of items in the queue.
func (p *Priority[T]) Len() int {
	if p.h == nil {
		return 0
	}
	return p.h.Len()
}

// Push adds an item to the queue.
func (p *Priority[T]) Push(x T) {
	p.minHeap().Insert(x)
}

// Peek returns the first item in the queue without removing it. The boolean is
// false i.f.f. the queue is empty.
func (p *Priority[T]) Peek() (T, bool) {
	return p.minHeap().PeekMin()
}

// Pop removes and returns the first item in the queue. The boolean is false
// i.f.f. the queue is empty.
func (p *Priority[T]) Pop() (T, bool) {
	return p.minHeap().ExtractMin()
}

// Grow increase's the queue's allocated buffer to hold `n` more items. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (p *Priority[T]) Grow(n int) {
	p.minHeap().Grow(n)
}
