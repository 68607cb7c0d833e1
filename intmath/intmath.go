// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import "golang.org/x/exp/constraints"

// Midpoint returns `floor((lo+hi)/2)` without overflow. It MUST only be called
// with `lo <= hi`.
func Midpoint[T constraints.Integer](lo, hi T) T {
	// `lo+hi` can overflow for large indices but `hi-lo` can't as long as the
	// ordering precondition holds.
	return lo + (hi-lo)/2
}
