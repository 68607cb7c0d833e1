// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package heap implements a binary min-heap over a slice.
//
// The slice is treated as a complete binary tree: the element at index i has
// children at 2i+1 and 2i+2, and its parent at (i-1)/2. Every element is
// greater than or equal to its parent so the minimum is always at index 0.
package heap

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// A MinHeap is a binary min-heap. The zero value has no ordering and MUST NOT
// be used; construct one with [New], [NewFunc], [Heapify] or [HeapifyFunc].
//
// A MinHeap is not safe for concurrent use.
type MinHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by [cmp.Less].
func New[T constraints.Ordered]() *MinHeap[T] {
	return NewFunc(cmp.Less[T])
}

// NewFunc returns an empty heap ordered by `less`, which MUST be a strict weak
// ordering. A max-heap is a MinHeap with `less` reversed.
func NewFunc[T any](less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{less: less}
}

// Heapify returns a heap holding a copy of `xs`, ordered by [cmp.Less]. It is
// O(len(xs)).
func Heapify[T constraints.Ordered](xs []T) *MinHeap[T] {
	return HeapifyFunc(xs, cmp.Less[T])
}

// HeapifyFunc is the equivalent of [Heapify], ordered by `less`.
func HeapifyFunc[T any](xs []T, less func(a, b T) bool) *MinHeap[T] {
	h := &MinHeap[T]{
		items: slices.Clone(xs),
		less:  less,
	}
	// Leaves are trivially heaps, so only the first half needs to be sifted.
	for i := h.Len()/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Len returns the number of items in the heap.
func (h *MinHeap[T]) Len() int {
	return len(h.items)
}

// IsEmpty is equivalent to `h.Len() == 0`.
func (h *MinHeap[T]) IsEmpty() bool {
	return h.Len() == 0
}

// Grow increases the heap's allocated buffer to hold at least `n` more items
// without reallocating. It does not place a limit on the size of the heap.
func (h *MinHeap[T]) Grow(n int) {
	h.items = slices.Grow(h.items, n)
}

// Insert adds `x` to the heap in O(log n).
func (h *MinHeap[T]) Insert(x T) {
	h.items = append(h.items, x)
	h.up(h.Len() - 1)
}

// PeekMin returns the minimum item without removing it. The boolean is false
// i.f.f. the heap is empty.
func (h *MinHeap[T]) PeekMin() (T, bool) {
	if h.IsEmpty() {
		return zero[T](), false
	}
	return h.items[0], true
}

// ExtractMin removes and returns the minimum item in O(log n). The boolean is
// false i.f.f. the heap is empty.
func (h *MinHeap[T]) ExtractMin() (T, bool) {
	if h.IsEmpty() {
		return zero[T](), false
	}

	root := h.items[0]
	n := h.Len() - 1
	last := h.items[n]
	h.items[n] = zero[T]() // don't retain references beyond the live items
	h.items = h.items[:n]

	if n > 0 {
		h.items[0] = last
		h.down(0)
	}
	return root, true
}

func zero[T any]() (z T) { return }

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *MinHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// up restores the heap invariant after the item at `i` may have become smaller
// than its parent.
func (h *MinHeap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down restores the heap invariant after the item at `i` may have become
// larger than either of its children. On equality, the lower index is
// preferred so a parent is never swapped with an equal child, nor the right
// child chosen over an equal left one.
func (h *MinHeap[T]) down(i int) {
	n := h.Len()
	for {
		smallest := i
		if l := left(i); l < n && h.less(h.items[l], h.items[smallest]) {
			smallest = l
		}
		if r := right(i); r < n && h.less(h.items[r], h.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
