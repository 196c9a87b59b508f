// Package queue provides FIFO implementations and the fill/rotate/drain
// workload used to benchmark them.
//
// This package offers four implementations of the FIFO interface:
//   - DequeFIFO: github.com/gammazero/deque, the reference container
//   - RingFIFO: fixed power-of-two slice ring
//   - ChannelFIFO: buffered channel with non-blocking select
//   - ShardedFIFO: single-shard go-lock-free-ring
//
// # Single goroutine
//
// The workload is single-threaded. None of the implementations are meant to
// be shared between goroutines while a benchmark runs, even the ones whose
// backing structure would tolerate it.
package queue

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by New for an unrecognized Kind.
var ErrUnknownKind = errors.New("queue: unknown FIFO kind")

// ErrCapacity is returned when a FIFO is requested with a non-positive capacity.
var ErrCapacity = errors.New("queue: capacity must be positive")

// FIFO is a first-in first-out container.
//
// Implementations are non-blocking: Enqueue returns false if a bounded
// container is full, Dequeue returns false if the container is empty.
type FIFO[T any] interface {
	// Enqueue appends an item at the back.
	// Returns false if the container is full.
	Enqueue(T) bool

	// Dequeue removes and returns the oldest item.
	Dequeue() (T, bool)

	// Len returns the number of queued items.
	Len() int
}

// Kind names a FIFO implementation.
type Kind string

const (
	KindDeque   Kind = "deque"
	KindRing    Kind = "ring"
	KindChannel Kind = "channel"
	KindSharded Kind = "sharded"
)

// Kinds lists every implementation in reporting order.
func Kinds() []Kind {
	return []Kind{KindDeque, KindRing, KindChannel, KindSharded}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New creates a FIFO of the given kind pre-sized for capacity items.
func New[T any](kind Kind, capacity int) (FIFO[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	switch kind {
	case KindDeque:
		return NewDeque[T](capacity), nil
	case KindRing:
		return NewRing[T](capacity), nil
	case KindChannel:
		return NewChannel[T](capacity), nil
	case KindSharded:
		return NewSharded[T](capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
