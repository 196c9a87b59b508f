package runner

import "time"

// progress fires at most once per interval but only reads the clock every
// `every` calls, keeping time.Now out of most loop iterations.
//
// Example: with every=64 and interval=1s, the clock is read once per 64
// calls and a tick fires if a second has passed since the last one.
type progress struct {
	interval time.Duration
	every    int
	count    int
	last     time.Time
}

func newProgress(interval time.Duration, every int) *progress {
	if every < 1 {
		every = 1
	}
	return &progress{
		interval: interval,
		every:    every,
		last:     time.Now(),
	}
}

// tick reports whether the interval has elapsed. A non-positive interval
// never fires.
func (p *progress) tick() bool {
	if p.interval <= 0 {
		return false
	}
	p.count++
	if p.count%p.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(p.last) >= p.interval {
		p.last = now
		return true
	}
	return false
}
