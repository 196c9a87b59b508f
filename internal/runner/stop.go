package runner

import (
	"context"
	"sync/atomic"
	"time"
)

// stopSignal is polled once per timed call, so it has to be a single
// atomic load rather than a select on ctx.Done().
type stopSignal struct {
	stopped atomic.Bool
}

func (s *stopSignal) done() bool {
	return s.stopped.Load()
}

func (s *stopSignal) trip() {
	s.stopped.Store(true)
}

// watch trips s when ctx is cancelled or, if limit > 0, once limit has
// passed. The returned func releases the timer and the context hook.
func (s *stopSignal) watch(ctx context.Context, limit time.Duration) func() {
	unhook := context.AfterFunc(ctx, s.trip)

	var timer *time.Timer
	if limit > 0 {
		timer = time.AfterFunc(limit, s.trip)
	}

	return func() {
		unhook()
		if timer != nil {
			timer.Stop()
		}
	}
}
