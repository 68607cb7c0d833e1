// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package containertest provides testing helpers shared by the container
// packages.
package containertest

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"golang.org/x/exp/constraints"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent]. None of
// the containers start goroutines so there is nothing else to ignore.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

// Drain calls `pop` until it reports that there are no more values, returning
// everything that was popped, in order.
func Drain[T any](pop func() (T, bool)) []T {
	var got []T
	for {
		x, ok := pop()
		if !ok {
			return got
		}
		got = append(got, x)
	}
}

// RNG returns a deterministic source of randomness, seeded by `seed`.
func RNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Reproducibility is valuable for tests
}

// Ints returns `n` values drawn uniformly from `[0,max)`. Duplicates are
// likely when `max` is small relative to `n`, which is intentional.
func Ints(rng *rand.Rand, n, max int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(max)
	}
	return out
}

// Sorted returns a sorted copy of `xs`, leaving the original untouched.
func Sorted[T constraints.Ordered](xs []T) []T {
	s := slices.Clone(xs)
	slices.Sort(s)
	return s
}

// RequireEmpty fails the test immediately if `pop` or `peek` report a value.
// Both MUST be methods of the same, empty container.
func RequireEmpty[T any](tb testing.TB, name string, peek, pop func() (T, bool)) {
	tb.Helper()
	for op, fn := range map[string]func() (T, bool){
		"peek": peek,
		"pop":  pop,
	} {
		if got, ok := fn(); ok {
			tb.Fatalf("%s %s() on empty container got (%v, true); want (_, false)", name, op, got)
		}
	}
}

// DiffOrder reports a diff between the `want` and `got` order of values
// removed from a container, prefixed by `desc`.
func DiffOrder[T any](tb testing.TB, desc string, got, want []T) {
	tb.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		tb.Errorf("%s; diff (-want +got):\n%s", desc, diff)
	}
}
