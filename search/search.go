// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package search implements iterative binary search over sorted slices.
//
// All functions require their input to be sorted in ascending order. This is
// the caller's responsibility and is not validated; an unsorted slice results
// in an unspecified, but in-range or absent, index.
package search

import (
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/containers/intmath"
)

// Find returns the index of an element equal to `target` and true, or false if
// there is none. If `s` contains duplicates of `target` then the returned index
// is the first one encountered by the search, which is not necessarily the
// leftmost; see [FindFirst] for that.
func Find[S ~[]E, E constraints.Ordered](s S, target E) (int, bool) {
	left, right := 0, len(s)-1
	for left <= right {
		mid := intmath.Midpoint(left, right)
		switch v := s[mid]; {
		case v == target:
			return mid, true
		case v < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return 0, false
}

// Index is equivalent to [Find] except that absence is signalled by returning
// -1. This is only unambiguous because valid indices are non-negative; prefer
// [Find] unless an integer encoding of absence is required.
func Index[S ~[]E, E constraints.Ordered](s S, target E) int {
	if i, ok := Find(s, target); ok {
		return i
	}
	return -1
}

// FindFunc is the equivalent of [Find] for arbitrary types. `cmp(e, target)`
// MUST return a negative number if `e` sorts before `target`, a positive number
// if after, and zero if they are equal.
func FindFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) (int, bool) {
	left, right := 0, len(s)-1
	for left <= right {
		mid := intmath.Midpoint(left, right)
		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return 0, false
}

// FindFirst returns the lowest index of an element equal to `target` and
// true, or false if there is none.
func FindFirst[S ~[]E, E constraints.Ordered](s S, target E) (int, bool) {
	// Invariant: s[:lo] < target <= s[hi:]
	lo, hi := 0, len(s)
	for lo < hi {
		mid := intmath.Midpoint(lo, hi)
		if s[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(s) || s[lo] != target {
		return 0, false
	}
	return lo, true
}

// FindLast returns the highest index of an element equal to `target` and true,
// or false if there is none.
func FindLast[S ~[]E, E constraints.Ordered](s S, target E) (int, bool) {
	// Invariant: s[:lo] <= target < s[hi:]
	lo, hi := 0, len(s)
	for lo < hi {
		mid := intmath.Midpoint(lo, hi)
		if target < s[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == 0 || s[lo-1] != target {
		return 0, false
	}
	return lo - 1, true
}
