// Package runner times benchmark cases outside of `go test`.
//
// It is a deliberately small harness: one warm-up call, then the case is
// called back to back until an iteration limit or a time limit is reached.
// There is no statistical aggregation; `go test -bench` with benchstat is
// the tool for that. The runner exists so the same cases can be run from a
// config file with structured logs and a table at the end.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrUnbounded is returned by New when neither a duration nor an iteration
// limit is set.
var ErrUnbounded = errors.New("runner: duration or max iterations required")

// ErrNoIterations is returned when a case was stopped before completing
// a single timed call.
var ErrNoIterations = errors.New("runner: no iterations completed")

// clockEvery is how many calls pass between clock reads for progress logs.
const clockEvery = 64

// Case is one timed entry point.
type Case struct {
	Name string
	Run  func()

	// Inputs fingerprints the data the case runs over. Zero if unknown.
	Inputs uint64
}

// Options bounds each case run.
type Options struct {
	// Duration limits the timed loop of each case. Zero means no limit.
	Duration time.Duration

	// MaxIterations limits the number of timed calls. Zero means no limit.
	MaxIterations int

	// Progress is the interval between debug progress logs. Zero disables them.
	Progress time.Duration
}

// Result is the outcome of one case.
type Result struct {
	Name       string
	Iterations int
	Elapsed    time.Duration
	Inputs     uint64
}

// NsPerOp returns the mean time per call in nanoseconds.
func (r Result) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// Runner executes cases sequentially.
type Runner struct {
	opts Options
	log  *zap.Logger
}

// New creates a Runner. A nil logger disables logging.
func New(opts Options, log *zap.Logger) (*Runner, error) {
	if opts.Duration < 0 || opts.MaxIterations < 0 {
		return nil, fmt.Errorf("runner: negative limit (duration=%s, max iterations=%d)",
			opts.Duration, opts.MaxIterations)
	}
	if opts.Duration == 0 && opts.MaxIterations == 0 {
		return nil, ErrUnbounded
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{opts: opts, log: log}, nil
}

// Run times c until a limit is reached or ctx is cancelled.
//
// Cancellation after at least one call still yields a Result for the calls
// that completed, together with the context error.
func (r *Runner) Run(ctx context.Context, c Case) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Name: c.Name}, err
	}

	log := r.log.With(zap.String("case", c.Name))
	log.Debug("warm-up")
	c.Run()

	var stop stopSignal
	release := stop.watch(ctx, r.opts.Duration)
	defer release()

	prog := newProgress(r.opts.Progress, clockEvery)
	maxIter := r.opts.MaxIterations

	n := 0
	start := time.Now()
	for !stop.done() && (maxIter == 0 || n < maxIter) {
		c.Run()
		n++
		if prog.tick() {
			log.Debug("progress",
				zap.Int("iterations", n),
				zap.Duration("elapsed", time.Since(start)))
		}
	}
	elapsed := time.Since(start)

	res := Result{
		Name:       c.Name,
		Iterations: n,
		Elapsed:    elapsed,
		Inputs:     c.Inputs,
	}
	if n == 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		return res, fmt.Errorf("%w: %s", ErrNoIterations, c.Name)
	}

	log.Info("case finished",
		zap.Int("iterations", n),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ns_per_op", res.NsPerOp()))

	return res, ctx.Err()
}

// RunAll runs cases in order and stops at the first error.
// Results for the cases that completed are returned with the error.
func (r *Runner) RunAll(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res, err := r.Run(ctx, c)
		if err != nil {
			if res.Iterations > 0 {
				results = append(results, res)
			}
			return results, fmt.Errorf("run %s: %w", c.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
