package queue

import (
	"errors"
	"fmt"
)

// ErrEmptyWorkload is returned by NewChurn when there are no items.
var ErrEmptyWorkload = errors.New("queue: churn needs at least one item")

// ErrNotEmpty is returned by NewChurn when the container already holds items.
var ErrNotEmpty = errors.New("queue: churn container must start empty")

// Phase identifies which part of the cycle removed an element.
type Phase int

const (
	// PhaseChurn is the constant-occupancy dequeue/enqueue loop.
	PhaseChurn Phase = iota
	// PhaseDrain is the final emptying of the container.
	PhaseDrain
)

func (p Phase) String() string {
	switch p {
	case PhaseChurn:
		return "churn"
	case PhaseDrain:
		return "drain"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Churn is the fill/rotate/drain workload over a fixed set of items.
//
// NewChurn is the setup step and stays outside the timed region. The timed
// body is DequeueAndEnqueue, which leaves the container empty so it can be
// called again on the same instance.
type Churn[T any] struct {
	q     FIFO[T]
	items []T
}

// NewChurn binds an empty container to the items it will cycle.
//
// The container is filled once with every item and drained again, so a
// container that cannot hold len(items) is rejected here with ErrCapacity
// rather than dropping items inside the timed cycle.
func NewChurn[T any](q FIFO[T], items []T) (*Churn[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyWorkload
	}
	if q.Len() != 0 {
		return nil, fmt.Errorf("%w: holds %d", ErrNotEmpty, q.Len())
	}

	accepted := 0
	for _, v := range items {
		if !q.Enqueue(v) {
			break
		}
		accepted++
	}
	for q.Len() > 0 {
		q.Dequeue()
	}
	if accepted < len(items) {
		return nil, fmt.Errorf("%w: container took %d of %d items", ErrCapacity, accepted, len(items))
	}

	return &Churn[T]{q: q, items: items}, nil
}

// Size returns the number of items in the workload.
func (c *Churn[T]) Size() int {
	return len(c.items)
}

// Len returns the current container occupancy.
func (c *Churn[T]) Len() int {
	return c.q.Len()
}

// DequeueAndEnqueue runs one full cycle:
//  1. enqueue every item,
//  2. for each item in order, dequeue the oldest and enqueue the item,
//  3. dequeue until empty.
//
// Occupancy stays at Size() throughout step 2, so Dequeue is never called on
// an empty container.
func (c *Churn[T]) DequeueAndEnqueue() {
	q := c.q
	items := c.items

	for _, v := range items {
		q.Enqueue(v)
	}

	for _, v := range items {
		q.Dequeue()
		q.Enqueue(v)
	}

	for q.Len() > 0 {
		q.Dequeue()
	}
}

// Trace runs the same cycle as DequeueAndEnqueue and reports every removed
// element with the phase that removed it.
func (c *Churn[T]) Trace(fn func(Phase, T)) {
	q := c.q
	items := c.items

	for _, v := range items {
		q.Enqueue(v)
	}

	for _, v := range items {
		out, _ := q.Dequeue()
		fn(PhaseChurn, out)
		q.Enqueue(v)
	}

	for q.Len() > 0 {
		out, _ := q.Dequeue()
		fn(PhaseDrain, out)
	}
}
