// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heap

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Sort returns a copy of `xs` in ascending order, as determined by repeatedly
// extracting the minimum of a heap. `xs` is not modified.
func Sort[T constraints.Ordered](xs []T) []T {
	return SortFunc(xs, cmp.Less[T])
}

// SortFunc is the equivalent of [Sort], ordered by `less`. The sort is not
// stable.
func SortFunc[T any](xs []T, less func(a, b T) bool) []T {
	h := HeapifyFunc(xs, less)
	out := make([]T, 0, len(xs))
	for {
		x, ok := h.ExtractMin()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}
