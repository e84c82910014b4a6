// Package scratch provides the array-backed Stack and Queue workspaces the
// traversal algorithms thread their frontiers through.
//
// Entries are dense vertex indices borrowed from a core.View, never names
// or pointers the workspace would have to own. Both structures grow by
// amortized doubling and support O(1) amortized push/pop and
// enqueue/dequeue.
//
// Reuse contract: a workspace may be handed to many algorithm calls in
// sequence, but every entry point that receives one MUST drain it first
// (Reset) so residue from an aborted prior call cannot leak into the next
// traversal. Workspaces are not safe for concurrent use.
package scratch

// Stack is a LIFO workspace of vertex indices.
// The zero value is ready to use.
type Stack struct {
	items []int
}

// NewStack returns an empty stack with the given capacity hint.
func NewStack(capacity int) *Stack {
	return &Stack{items: make([]int, 0, capacity)}
}

// Push appends v on top of the stack. O(1) amortized.
func (s *Stack) Push(v int) { s.items = append(s.items, v) }

// Pop removes and returns the top entry; false when empty. O(1).
func (s *Stack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v, true
}

// Len returns the number of entries.
func (s *Stack) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no entries.
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// Reset drains the stack in O(1), retaining capacity for reuse.
func (s *Stack) Reset() { s.items = s.items[:0] }

// Queue is a FIFO workspace of vertex indices backed by a growable ring
// buffer, so dequeue does not shift the remaining entries.
// The zero value is ready to use.
type Queue struct {
	items []int
	head  int
	size  int
}

// NewQueue returns an empty queue with the given capacity hint.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make([]int, capacity)}
}

// Enqueue appends v at the tail of the queue. O(1) amortized.
func (q *Queue) Enqueue(v int) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++
}

// Dequeue removes and returns the head entry; false when empty. O(1).
func (q *Queue) Dequeue() (int, bool) {
	if q.size == 0 {
		return 0, false
	}
	v := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.size--

	return v, true
}

// Len returns the number of entries.
func (q *Queue) Len() int { return q.size }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return q.size == 0 }

// Reset drains the queue in O(1), retaining capacity for reuse.
func (q *Queue) Reset() {
	q.head = 0
	q.size = 0
}

// grow doubles the ring, unwrapping the live window to the front.
func (q *Queue) grow() {
	capacity := len(q.items) * 2
	if capacity == 0 {
		capacity = 16
	}
	next := make([]int, capacity)
	for i := 0; i < q.size; i++ {
		next[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = next
	q.head = 0
}
