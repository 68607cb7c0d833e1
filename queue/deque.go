// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

// A Deque is a double-ended queue backed by a circular buffer, with
// constant-time popping from either end and amortised constant-time pushing to
// either end. The zero value is an empty Deque ready for use. A Deque is not
// safe for concurrent use.
type Deque[T any] struct {
	ring  []T // len(ring) MUST == cap(ring)
	start int // 0 <= start < len(ring) unless len(ring) == 0
	n     int // 0 <= n <= len(ring)
}

func (d *Deque[T]) cap() int {
	return len(d.ring)
}

// Len returns the number of items in the Deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// IsEmpty is equivalent to `d.Len() == 0`.
func (d *Deque[T]) IsEmpty() bool {
	return d.n == 0
}

// ringIndex converts the logical index `i`, which MAY be -1, into an index in
// the ring. The ring MUST be non-empty.
func (d *Deque[T]) ringIndex(i int) int {
	c := d.cap()
	return ((d.start+i)%c + c) % c
}

// ensureSpace doubles the capacity, or sets it to 1, if the Deque is full.
func (d *Deque[T]) ensureSpace() {
	if d.n < d.cap() {
		return
	}
	grow := 2 * d.cap()
	if grow == 0 {
		grow = 1
	}
	d.Grow(grow)
}

// PushBack adds `x` to the back of the Deque.
func (d *Deque[T]) PushBack(x T) {
	d.ensureSpace()
	d.ring[d.ringIndex(d.n)] = x
	d.n++
}

// PushFront adds `x` to the front of the Deque.
func (d *Deque[T]) PushFront(x T) {
	d.ensureSpace()
	d.start = d.ringIndex(-1)
	d.ring[d.start] = x
	d.n++
}

// PeekFront returns the first item without removing it. The boolean is false
// i.f.f. the Deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	return d.At(0)
}

// PeekBack returns the last item without removing it. The boolean is false
// i.f.f. the Deque is empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	return d.At(d.n - 1)
}

// At returns the i'th item from the front. The boolean is false i.f.f. `i` is
// not in `[0,d.Len())`.
func (d *Deque[T]) At(i int) (T, bool) {
	if i < 0 || i >= d.n {
		return zero[T](), false
	}
	return d.ring[d.ringIndex(i)], true
}

// PopFront removes and returns the first item. The boolean is false i.f.f. the
// Deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	x := d.ring[d.start]
	d.ring[d.start] = zero[T]()
	d.start = d.ringIndex(1)
	d.n--
	return x, true
}

// PopBack removes and returns the last item. The boolean is false i.f.f. the
// Deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	i := d.ringIndex(d.n - 1)
	x := d.ring[i]
	d.ring[i] = zero[T]()
	d.n--
	return x, true
}

// Grow increases the Deque's capacity to `n`, if necessary. It is O(n)
// and does not place a limit on the size of the Deque.
func (d *Deque[T]) Grow(n int) {
	if n <= d.cap() {
		return
	}
	b := make([]T, n)
	copy(b, d.ring[d.start:])
	copy(b[len(d.ring)-d.start:], d.ring[:d.start])

	d.ring = b
	d.start = 0
}
