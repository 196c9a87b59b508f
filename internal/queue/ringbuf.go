package queue

// RingFIFO is a fixed-size ring over a power-of-two slice.
//
// head and tail are free-running counters; the slot is selected with a
// mask instead of a remainder. There is no synchronization at all, which
// makes this the floor the other implementations are compared against.
type RingFIFO[T any] struct {
	buf  []T
	mask uint64
	head uint64 // next slot to write
	tail uint64 // next slot to read
}

// NewRing creates a RingFIFO with room for at least capacity items.
// The size is rounded up to the next power of 2.
func NewRing[T any](capacity int) *RingFIFO[T] {
	n := uint64(1)
	for n < uint64(capacity) {
		n <<= 1
	}

	return &RingFIFO[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// Enqueue adds an item at the back.
// Returns false if the ring is full.
func (r *RingFIFO[T]) Enqueue(v T) bool {
	if r.head-r.tail >= uint64(len(r.buf)) {
		return false
	}
	r.buf[r.head&r.mask] = v
	r.head++
	return true
}

// Dequeue removes and returns the oldest item.
// Returns false if the ring is empty.
func (r *RingFIFO[T]) Dequeue() (T, bool) {
	var zero T
	if r.tail == r.head {
		return zero, false
	}

	slot := r.tail & r.mask
	v := r.buf[slot]
	// Drop the reference so drained rings don't pin strings.
	r.buf[slot] = zero
	r.tail++
	return v, true
}

// Len returns the number of queued items.
func (r *RingFIFO[T]) Len() int {
	return int(r.head - r.tail)
}

// Cap returns the ring size.
func (r *RingFIFO[T]) Cap() int {
	return len(r.buf)
}
