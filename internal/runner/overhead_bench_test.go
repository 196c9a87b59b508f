package runner

import (
	"context"
	"testing"
	"time"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/branch"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkBool bool

// The timed loop polls the stop signal and the progress ticker once per
// call. These benchmarks put a number on that overhead so it can be
// compared against the cost of a case.

func BenchmarkStopSignal_Done(b *testing.B) {
	var s stopSignal
	release := s.watch(context.Background(), time.Hour)
	defer release()
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		result = s.done()
	}
	sinkBool = result
}

func BenchmarkStopSignal_ContextSelect(b *testing.B) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		select {
		case <-ctx.Done():
			result = true
		default:
			result = false
		}
	}
	sinkBool = result
}

func BenchmarkProgress_Tick(b *testing.B) {
	p := newProgress(time.Hour, clockEvery)
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		result = p.tick()
	}
	sinkBool = result
}

// BenchmarkLoop_Single compares a bare entry point call with the same call
// wrapped in the runner's per-iteration checks.
func BenchmarkLoop_Single(b *testing.B) {
	s, err := branch.NewSuite(values.NewLCG(values.DefaultSeed))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Bare", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Single()
		}
	})

	b.Run("Polled", func(b *testing.B) {
		var stop stopSignal
		release := stop.watch(context.Background(), time.Hour)
		defer release()
		p := newProgress(time.Hour, clockEvery)
		b.ReportAllocs()
		b.ResetTimer()

		var ticked bool
		for i := 0; i < b.N && !stop.done(); i++ {
			s.Single()
			ticked = p.tick()
		}
		sinkBool = ticked
	})
}
