// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack implements last-in, first-out stacks.
package stack

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// A Stack is a LIFO stack backed by a slice. The zero value is an empty stack
// ready for use. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

func zero[T any]() (z T) { return }

// Push adds `x` to the top of the stack.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes and returns the top of the stack. The boolean is false i.f.f. the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	n := len(s.items)
	if n == 0 {
		return zero[T](), false
	}
	x := s.items[n-1]
	s.items[n-1] = zero[T]()
	s.items = s.items[:n-1]
	return x, true
}

// Peek returns the top of the stack without removing it. The boolean is false
// i.f.f. the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	n := len(s.items)
	if n == 0 {
		return zero[T](), false
	}
	return s.items[n-1], true
}

// Len returns the number of items in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty is equivalent to `s.Len() == 0`.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// A MinStack is equivalent to a [Stack] but additionally reports its minimum
// value in constant time. The zero value is ready for use.
type MinStack[T constraints.Ordered] struct {
	items Stack[T]
	// The top of mins is always the minimum of items. Values equal to the
	// running minimum are pushed again so they can be popped in tandem.
	mins Stack[T]
}

// Push adds `x` to the top of the stack.
func (s *MinStack[T]) Push(x T) {
	s.items.Push(x)
	if m, ok := s.mins.Peek(); !ok || !cmp.Less(m, x) {
		s.mins.Push(x)
	}
}

// Pop removes and returns the top of the stack. The boolean is false i.f.f. the
// stack is empty.
func (s *MinStack[T]) Pop() (T, bool) {
	x, ok := s.items.Pop()
	if !ok {
		return x, false
	}
	// `x` can't be less than the minimum, so not being greater means equal.
	if m, _ := s.mins.Peek(); !cmp.Less(m, x) {
		s.mins.Pop()
	}
	return x, true
}

// Min returns the smallest value in the stack, as determined by [cmp.Less].
// The boolean is false i.f.f. the stack is empty.
func (s *MinStack[T]) Min() (T, bool) {
	return s.mins.Peek()
}

// Peek returns the top of the stack without removing it. The boolean is false
// i.f.f. the stack is empty.
func (s *MinStack[T]) Peek() (T, bool) {
	return s.items.Peek()
}

// Len returns the number of items in the stack.
func (s *MinStack[T]) Len() int {
	return s.items.Len()
}

// IsEmpty is equivalent to `s.Len() == 0`.
func (s *MinStack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}
