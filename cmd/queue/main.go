// Command queue compares FIFO implementations on the fill/rotate/drain cycle.
//
// Usage:
//
//	go run ./cmd/queue -n 100000 -size 1000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/queue"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

func main() {
	iterations := flag.Int("n", 100_000, "number of cycles per implementation")
	size := flag.Int("size", 1000, "items per cycle")
	seed := flag.Int64("seed", values.DefaultSeed, "item generator seed")
	flag.Parse()

	if *iterations < 1 {
		*iterations = 1
	}

	fmt.Printf("Benchmarking FIFO churn (%d cycles, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	items, err := values.Array[int](rand.New(rand.NewSource(*seed)), *size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "queue:", err)
		os.Exit(1)
	}

	results, err := compare(items, *iterations, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "queue:", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "queue: no FIFO accepts size", *size)
		os.Exit(1)
	}

	// Each cycle is 2*size enqueues and 2*size dequeues.
	opsPerCycle := float64(4 * *size)

	fmt.Printf("\nResults (per cycle, per queue operation):\n")
	base := results[0]
	for _, r := range results {
		perCycle := float64(r.elapsed.Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-8s %v (%.2f ns/cycle, %.2f ns/op, %.2fx vs %s)\n",
			r.kind, r.elapsed, perCycle, perCycle/opsPerCycle,
			float64(r.elapsed)/float64(base.elapsed), base.kind)
	}
}

type result struct {
	kind    queue.Kind
	elapsed time.Duration
}

// compare times iterations churn cycles over items for every FIFO kind.
// Kinds that cannot hold len(items) are reported to warn and skipped.
func compare(items []int, iterations int, warn io.Writer) ([]result, error) {
	var results []result
	for _, kind := range queue.Kinds() {
		q, err := queue.New[int](kind, len(items))
		if errors.Is(err, queue.ErrCapacity) {
			fmt.Fprintf(warn, "queue: skipping %s: %v\n", kind, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		c, err := queue.NewChurn(q, items)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			c.DequeueAndEnqueue()
		}
		results = append(results, result{kind, time.Since(start)})
	}
	return results, nil
}
