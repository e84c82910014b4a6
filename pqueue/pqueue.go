// Package pqueue provides an array-backed binary min-heap keyed by
// non-negative integer priorities, carrying an opaque payload per entry.
//
// Unlike container/heap, slot positions are part of the contract: Push
// returns the entry's slot, and every internal reordering is reported
// through an optional move hook, so a caller can maintain its own
// payload → slot side table and drive DecreaseKey in O(log n). The heap
// itself keeps no such table; it stays a plain heap, and the algorithms
// that need decrease-key (Prim, Dijkstra) own the mapping.
//
// Operations: Push O(log n) amortized, ExtractMin O(log n),
// DecreaseKey O(log n), IsEmpty/Len O(1). Capacity grows by amortized
// doubling. Entries never own their payload's lifetime.
package pqueue

import "errors"

// Sentinel errors for heap usage violations.
var (
	// ErrNegativeKey is returned by Push for a key below zero.
	ErrNegativeKey = errors.New("pqueue: key must be non-negative")

	// ErrBadSlot is returned by DecreaseKey for a slot outside the heap.
	ErrBadSlot = errors.New("pqueue: slot out of range")

	// ErrKeyNotSmaller is returned by DecreaseKey when the new key does not
	// strictly decrease the entry's current key. The heap is unchanged.
	ErrKeyNotSmaller = errors.New("pqueue: new key not smaller than current")
)

// entry pairs a priority key with its opaque payload.
type entry struct {
	key     int
	payload any
}

// Heap is an array-backed binary min-heap. The zero value is NOT ready for
// use; construct with New.
type Heap struct {
	entries []entry
	onMove  func(payload any, slot int)
}

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithOnMove registers a hook invoked every time an entry comes to rest in
// a slot: on push, on every swap during sift-up/sift-down, and on the
// swap-with-last step of extraction. Callers use it to keep a payload → slot
// table current for DecreaseKey.
func WithOnMove(fn func(payload any, slot int)) Option {
	return func(h *Heap) { h.onMove = fn }
}

// New creates an empty min-heap.
func New(opts ...Option) *Heap {
	h := &Heap{}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// place writes e into slot i and notifies the move hook.
func (h *Heap) place(i int, e entry) {
	h.entries[i] = e
	if h.onMove != nil {
		h.onMove(e.payload, i)
	}
}

// siftUp restores heap order upward from slot i; returns the final slot.
func (h *Heap) siftUp(i int) int {
	e := h.entries[i]
	for i > 0 {
		p := (i - 1) / 2
		if h.entries[p].key <= e.key {
			break
		}
		h.place(i, h.entries[p])
		i = p
	}
	h.place(i, e)

	return i
}

// siftDown restores heap order downward from slot i.
func (h *Heap) siftDown(i int) {
	n := len(h.entries)
	e := h.entries[i]
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		min := e.key
		if l < n && h.entries[l].key < min {
			smallest, min = l, h.entries[l].key
		}
		if r < n && h.entries[r].key < min {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.place(i, h.entries[smallest])
		i = smallest
	}
	h.place(i, e)
}

// Len returns the number of entries.
func (h *Heap) Len() int { return len(h.entries) }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap) IsEmpty() bool { return len(h.entries) == 0 }

// Push inserts payload with the given priority key and returns the slot the
// entry settled in. The slot stays valid only until a later operation moves
// the entry; track moves via WithOnMove if you need DecreaseKey.
// Returns ErrNegativeKey for key < 0 (the heap is unchanged).
// Complexity: O(log n) amortized.
func (h *Heap) Push(payload any, key int) (int, error) {
	if key < 0 {
		return 0, ErrNegativeKey
	}
	h.entries = append(h.entries, entry{key: key, payload: payload})

	return h.siftUp(len(h.entries) - 1), nil
}

// ExtractMin removes and returns the minimum-key entry's payload and key.
// The third result is false when the heap is empty. Order is restored by
// moving the last entry to the root and sifting it down.
// Complexity: O(log n).
func (h *Heap) ExtractMin() (any, int, bool) {
	if len(h.entries) == 0 {
		return nil, 0, false
	}
	root := h.entries[0]
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root.payload, root.key, true
}

// DecreaseKey lowers the key of the entry currently in slot to newKey and
// sifts it up. Fails with ErrBadSlot for an out-of-range slot, or
// ErrKeyNotSmaller when newKey does not strictly decrease the current key;
// in both cases the heap is untouched.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(slot, newKey int) error {
	if slot < 0 || slot >= len(h.entries) {
		return ErrBadSlot
	}
	if newKey >= h.entries[slot].key {
		return ErrKeyNotSmaller
	}
	h.entries[slot].key = newKey
	h.siftUp(slot)

	return nil
}

// Reset drains the heap in O(1), retaining capacity for reuse.
func (h *Heap) Reset() { h.entries = h.entries[:0] }
