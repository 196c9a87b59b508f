package queue

import (
	"fmt"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// shardedRingSize is the backing ring size. The ring is created once at
// this size and the requested capacity is enforced on top of it.
const shardedRingSize = 4096

// ShardedFIFO adapts go-lock-free-ring with a single shard to FIFO.
//
// The ring is MPSC and stores values as any, so every Enqueue boxes the
// element and every Dequeue pays a type assertion. With one shard and one
// writer it preserves insertion order.
type ShardedFIFO[T any] struct {
	r        *ring.ShardedRing
	capacity int
	n        int
}

// NewSharded creates a ShardedFIFO holding at most capacity items.
func NewSharded[T any](capacity int) (*ShardedFIFO[T], error) {
	if capacity > shardedRingSize {
		return nil, fmt.Errorf("%w: sharded ring holds at most %d items, got %d",
			ErrCapacity, shardedRingSize, capacity)
	}
	r, err := ring.NewShardedRing(shardedRingSize, 1)
	if err != nil {
		return nil, fmt.Errorf("create sharded ring: %w", err)
	}
	return &ShardedFIFO[T]{r: r, capacity: capacity}, nil
}

// Enqueue writes v as producer 0.
// Returns false if capacity items are already queued.
func (q *ShardedFIFO[T]) Enqueue(v T) bool {
	if q.n >= q.capacity {
		return false
	}
	if !q.r.Write(0, v) {
		return false
	}
	q.n++
	return true
}

// Dequeue reads the oldest item.
func (q *ShardedFIFO[T]) Dequeue() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	v, ok := q.r.TryRead()
	if !ok {
		return zero, false
	}
	q.n--
	return v.(T), true
}

// Len returns the number of queued items.
func (q *ShardedFIFO[T]) Len() int {
	return q.n
}
