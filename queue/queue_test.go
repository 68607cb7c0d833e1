// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/containers/containertest"
)

func TestMain(m *testing.M) {
	containertest.NoLeak(m)
}

func TestFIFOEmpty(t *testing.T) {
	var q FIFO[int]
	assert.Zero(t, q.Len(), "Len()")
	assert.True(t, q.IsEmpty(), "IsEmpty()")
	containertest.RequireEmpty(t, "FIFO", q.Front, q.Dequeue)

	q.Enqueue(0)
	got, ok := q.Front()
	require.True(t, ok, "Front() after Enqueue(0)")
	require.Zero(t, got)
	_, _ = q.Dequeue()
	containertest.RequireEmpty(t, "FIFO after draining", q.Front, q.Dequeue)
}

func TestFIFO(t *testing.T) {
	t.Run("disjoint_Enqueue_Dequeue", func(t *testing.T) {
		var q FIFO[int]

		var want []int
		for i := range 5 {
			q.Enqueue(i)
			want = append(want, i)
			require.Equal(t, i+1, q.Len(), "Len()")
		}
		containertest.DiffOrder(t, "FIFO.Dequeue() until !ok", containertest.Drain(q.Dequeue), want)
	})

	t.Run("interleaved_Enqueue_Dequeue", func(t *testing.T) {
		var q FIFO[int]

		rng := containertest.RNG(0)

		var got, want []int
		for i := range 1000 {
			q.Enqueue(i)
			want = append(want, i)

			if rng.IntN(4) == 0 {
				front, ok := q.Front()
				require.True(t, ok, "Front()")
				x, ok := q.Dequeue()
				require.True(t, ok, "Dequeue()")
				require.Equal(t, front, x, "Dequeue() vs preceding Front()")
				got = append(got, x)
			}
			require.Equal(t, len(want)-len(got), q.Len(), "Len()")
		}

		got = append(got, containertest.Drain(q.Dequeue)...)
		containertest.DiffOrder(t, "FIFO.Dequeue() until !ok", got, want)
	})
}

func TestFIFOCompaction(t *testing.T) {
	var q FIFO[int]
	for i := range 10 {
		q.Enqueue(i)
	}

	for i := range 5 {
		x, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, x)
		require.LessOrEqual(t, q.head, len(q.items), "head cursor out of range")
		require.LessOrEqual(t, q.head, len(q.items)/2, "dead prefix exceeds half of the backing slice")
	}
	// The 6th item removed pushes the cursor past half and triggers compaction.
	_, _ = q.Dequeue()
	assert.Zero(t, q.head, "head after compaction")
	assert.Equal(t, []int{6, 7, 8, 9}, q.items, "live items after compaction")
	assert.Equal(t, 4, q.Len(), "Len()")

	// Slots beyond the live items MUST NOT retain stale values.
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, q.items[4:10], "cleared tail")
}

func TestFIFODequeueReleasesSlot(t *testing.T) {
	var q FIFO[*int]
	for i := range 5 {
		q.Enqueue(&i)
	}
	_, _ = q.Dequeue()
	require.Equal(t, 1, q.head, "no compaction expected yet")
	assert.Nil(t, q.items[0], "dequeued slot retains pointer")
}
