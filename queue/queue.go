// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements first-in, first-out, double-ended, and priority
// queues.
package queue

// A FIFO is a first-in, first-out queue. The zero value is an empty queue ready
// for use. A FIFO is not safe for concurrent use.
//
// Dequeued items are not removed from the backing slice immediately; instead
// the head cursor advances and the dead prefix is dropped once it exceeds half
// of the slice. This keeps [FIFO.Dequeue] amortised constant-time while
// bounding wasted space.
type FIFO[T any] struct {
	items []T
	head  int // 0 <= head <= len(items)
}

func zero[T any]() (z T) { return }

// Len returns the number of items in the queue.
func (f *FIFO[T]) Len() int {
	return len(f.items) - f.head
}

// IsEmpty is equivalent to `f.Len() == 0`.
func (f *FIFO[T]) IsEmpty() bool {
	return f.Len() == 0
}

// Enqueue adds `x` to the back of the queue.
func (f *FIFO[T]) Enqueue(x T) {
	f.items = append(f.items, x)
}

// Front returns the item at the front of the queue without removing it. The
// boolean is false i.f.f. the queue is empty.
func (f *FIFO[T]) Front() (T, bool) {
	if f.IsEmpty() {
		return zero[T](), false
	}
	return f.items[f.head], true
}

// Dequeue removes and returns the item at the front of the queue. The boolean
// is false i.f.f. the queue is empty.
func (f *FIFO[T]) Dequeue() (T, bool) {
	if f.IsEmpty() {
		return zero[T](), false
	}

	x := f.items[f.head]
	f.items[f.head] = zero[T]()
	f.head++
	if f.head > len(f.items)/2 {
		f.compact()
	}
	return x, true
}

// compact moves the live items to the start of the backing array, reusing its
// capacity.
func (f *FIFO[T]) compact() {
	n := copy(f.items, f.items[f.head:])
	clear(f.items[n:])
	f.items = f.items[:n]
	f.head = 0
}
