package queue

// ChannelFIFO keeps the churn items in a buffered channel.
//
// The churn cycle runs on one goroutine, so a blocking send or receive would
// deadlock instead of reporting full or empty. Both sides use select with a
// default case and still take the channel lock on every call.
type ChannelFIFO[T any] struct {
	ch chan T
}

// NewChannel returns a ChannelFIFO sized for capacity items.
func NewChannel[T any](capacity int) *ChannelFIFO[T] {
	return &ChannelFIFO[T]{
		ch: make(chan T, capacity),
	}
}

// Enqueue appends v, or reports false when capacity items are buffered.
func (q *ChannelFIFO[T]) Enqueue(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Dequeue takes the oldest item. ok is false on an empty buffer.
func (q *ChannelFIFO[T]) Dequeue() (v T, ok bool) {
	select {
	case v = <-q.ch:
		return v, true
	default:
		return v, false
	}
}

// Len is the current occupancy.
func (q *ChannelFIFO[T]) Len() int {
	return len(q.ch)
}

// Cap is the capacity passed to NewChannel.
func (q *ChannelFIFO[T]) Cap() int {
	return cap(q.ch)
}
