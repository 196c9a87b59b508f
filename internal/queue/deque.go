package queue

import "github.com/gammazero/deque"

// DequeFIFO adapts a gammazero deque to FIFO.
//
// This is the reference container for the churn workload: a growable ring
// that is pre-sized so the timed region never resizes it.
type DequeFIFO[T any] struct {
	d *deque.Deque[T]
}

// NewDeque creates a DequeFIFO with room for capacity items.
//
// The capacity is also the minimum, so draining does not shrink the buffer
// between timed calls.
func NewDeque[T any](capacity int) *DequeFIFO[T] {
	return &DequeFIFO[T]{
		d: deque.New[T](capacity, capacity),
	}
}

// Enqueue appends v at the back. The deque grows as needed, so this
// always succeeds.
func (q *DequeFIFO[T]) Enqueue(v T) bool {
	q.d.PushBack(v)
	return true
}

// Dequeue removes the front item.
func (q *DequeFIFO[T]) Dequeue() (T, bool) {
	if q.d.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.d.PopFront(), true
}

// Len returns the number of queued items.
func (q *DequeFIFO[T]) Len() int {
	return q.d.Len()
}
