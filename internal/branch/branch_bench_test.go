package branch_test

import (
	"testing"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/branch"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkInt int

// BenchmarkIf runs every entry point as a sub-benchmark. One op is one
// entry point call, i.e. branch.Iterations evaluator calls.
func BenchmarkIf(b *testing.B) {
	s, err := branch.NewSuite(values.NewLCG(values.DefaultSeed))
	if err != nil {
		b.Fatal(err)
	}

	for _, c := range s.Cases() {
		b.Run(c.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				c.Run()
			}
		})
	}
}

// Per-call cost of the evaluators on a fixed operand, without the input
// buffer walk.

func BenchmarkEval_ModEq2(b *testing.B) {
	b.ReportAllocs()
	var result int
	for i := 0; i < b.N; i++ {
		result = branch.ModEq2(i)
	}
	sinkInt = result
}

func BenchmarkEval_And4(b *testing.B) {
	b.ReportAllocs()
	var result int
	for i := 0; i < b.N; i++ {
		result = branch.And4(i, i+1, i+2, i+3)
	}
	sinkInt = result
}

func BenchmarkEval_AndOr(b *testing.B) {
	b.ReportAllocs()
	var result int
	for i := 0; i < b.N; i++ {
		result = branch.AndOr(i, i+1, i+2)
	}
	sinkInt = result
}

func BenchmarkEval_Consume(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		branch.Consume(i, 0, 0, 0)
	}
}
