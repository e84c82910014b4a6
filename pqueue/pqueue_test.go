package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/lexgraph/pqueue"
)

func TestPushExtract_SortedDrain(t *testing.T) {
	h := pqueue.New()
	keys := []int{42, 7, 19, 0, 7, 100, 3}
	for _, k := range keys {
		_, err := h.Push(k, k)
		require.NoError(t, err)
	}
	require.Equal(t, len(keys), h.Len())

	// Draining must reproduce the keys in ascending order.
	sort.Ints(keys)
	for _, want := range keys {
		payload, key, ok := h.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, want, key)
		assert.Equal(t, want, payload.(int))
	}
	assert.True(t, h.IsEmpty())

	// Extraction from an empty heap reports the sentinel, not garbage.
	_, _, ok := h.ExtractMin()
	assert.False(t, ok)
}

func TestPush_RejectsNegativeKey(t *testing.T) {
	h := pqueue.New()
	_, err := h.Push("x", -1)
	assert.ErrorIs(t, err, pqueue.ErrNegativeKey)
	assert.True(t, h.IsEmpty())
}

func TestDecreaseKey_Validation(t *testing.T) {
	h := pqueue.New()
	slot, err := h.Push("only", 10)
	require.NoError(t, err)

	// Equal or larger keys are rejected as no-ops.
	assert.ErrorIs(t, h.DecreaseKey(slot, 10), pqueue.ErrKeyNotSmaller)
	assert.ErrorIs(t, h.DecreaseKey(slot, 11), pqueue.ErrKeyNotSmaller)
	assert.ErrorIs(t, h.DecreaseKey(5, 1), pqueue.ErrBadSlot)
	assert.ErrorIs(t, h.DecreaseKey(-1, 1), pqueue.ErrBadSlot)

	require.NoError(t, h.DecreaseKey(slot, 2))
	_, key, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 2, key)
}

// TestMoveHook_SlotTableStaysCurrent drives the heap exactly the way the
// mst and dijkstra packages do: payloads are small integers and a side
// table maps each payload to its current slot through the move hook. After
// every operation the table must agree with reality, proven by decreasing a
// tracked entry and seeing it surface first.
func TestMoveHook_SlotTableStaysCurrent(t *testing.T) {
	const n = 64
	slot := make([]int, n)
	for i := range slot {
		slot[i] = -1
	}
	h := pqueue.New(pqueue.WithOnMove(func(payload any, s int) {
		slot[payload.(int)] = s
	}))

	r := rand.New(rand.NewSource(7))
	for i := 0; i < n; i++ {
		_, err := h.Push(i, 100+r.Intn(900))
		require.NoError(t, err)
	}

	// Lower a handful of tracked payloads to unique tiny keys; they must
	// come out first, in exactly that key order.
	for i, payload := range []int{50, 11, 38} {
		require.NoError(t, h.DecreaseKey(slot[payload], i+1))
	}
	for _, want := range []int{50, 11, 38} {
		payload, _, ok := h.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, want, payload.(int))
	}
}

func TestReset_DrainsRetainingNothing(t *testing.T) {
	h := pqueue.New()
	for i := 0; i < 10; i++ {
		_, err := h.Push(i, i)
		require.NoError(t, err)
	}
	h.Reset()
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())

	// The heap is fully usable after a drain.
	_, err := h.Push("fresh", 1)
	require.NoError(t, err)
	payload, key, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, "fresh", payload)
	assert.Equal(t, 1, key)
}
