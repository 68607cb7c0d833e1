// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	NoLeak(m)
}

func TestDrain(t *testing.T) {
	src := []int{3, 1, 2}
	pop := func() (int, bool) {
		if len(src) == 0 {
			return 0, false
		}
		x := src[0]
		src = src[1:]
		return x, true
	}
	assert.Equal(t, []int{3, 1, 2}, Drain(pop))
	assert.Empty(t, Drain(pop))
}

func TestIntsDeterministic(t *testing.T) {
	a := Ints(RNG(42), 100, 10)
	b := Ints(RNG(42), 100, 10)
	require.Equal(t, a, b, "same seed")
	for _, x := range a {
		require.GreaterOrEqual(t, x, 0)
		require.Less(t, x, 10)
	}
}

func TestSorted(t *testing.T) {
	in := []int{5, 2, 9, 2}
	assert.Equal(t, []int{2, 2, 5, 9}, Sorted(in))
	assert.Equal(t, []int{5, 2, 9, 2}, in, "input modified")
}
