// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestMidpoint(t *testing.T) {
	tests := []struct {
		lo, hi, want int
	}{
		{lo: 0, hi: 0, want: 0},
		{lo: 0, hi: 1, want: 0},
		{lo: 0, hi: 5, want: 2},
		{lo: 3, hi: 5, want: 4},
		{lo: 4, hi: 4, want: 4},
		{lo: -5, hi: -1, want: -3},
		{lo: math.MaxInt - 2, hi: math.MaxInt, want: math.MaxInt - 1}, // `lo+hi` would overflow
	}

	for _, tt := range tests {
		if got := Midpoint(tt.lo, tt.hi); got != tt.want {
			t.Errorf("Midpoint[%T](%[1]d, %d) got %d; want %d", tt.lo, tt.hi, got, tt.want)
		}
	}

	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is valuable for tests
	for range 100 {
		lo := rng.Uint32()
		hi := lo + uint32(rng.IntN(int(math.MaxUint32-lo)+1))
		want := uint32((uint64(lo) + uint64(hi)) / 2)
		if got := Midpoint(lo, hi); got != want {
			t.Errorf("Midpoint[%T](%[1]d, %d) got %d; want %d", lo, hi, got, want)
		}
	}
}
