package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/branch"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/config"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/queue"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/runner"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

// buildCases performs all setup for the enabled suites. Everything here is
// outside the timed region.
func buildCases(cfg config.Config) ([]runner.Case, error) {
	var cases []runner.Case

	if cfg.HasSuite(config.SuiteQueue) {
		qc, err := queueCases(cfg)
		if err != nil {
			return nil, err
		}
		cases = append(cases, qc...)
	}

	if cfg.HasSuite(config.SuiteBranch) {
		bc, err := branchCases(cfg)
		if err != nil {
			return nil, err
		}
		cases = append(cases, bc...)
	}

	return cases, nil
}

func queueCases(cfg config.Config) ([]runner.Case, error) {
	var cases []runner.Case
	for _, f := range cfg.FIFOs {
		kind, err := queue.ParseKind(f)
		if err != nil {
			return nil, err
		}
		for _, elem := range cfg.Elements {
			for _, size := range cfg.Sizes {
				name := fmt.Sprintf("Queue/%s/%s/Size=%d", kind, elem, size)
				if !cfg.Selected(name) {
					continue
				}

				// Each sweep point gets its own generator so its items do
				// not depend on which other points are selected.
				r := rand.New(rand.NewSource(cfg.Seed))

				var c runner.Case
				switch elem {
				case config.ElementInt:
					c, err = churnCase[int](r, kind, size)
				case config.ElementString:
					c, err = churnCase[string](r, kind, size)
				case config.ElementUUID:
					c, err = churnCase[uuid.UUID](r, kind, size)
				default:
					err = fmt.Errorf("unknown element type %q", elem)
				}
				if err != nil {
					return nil, fmt.Errorf("setup %s: %w", name, err)
				}
				c.Name = name
				cases = append(cases, c)
			}
		}
	}
	return cases, nil
}

func churnCase[T values.Element](r *rand.Rand, kind queue.Kind, size int) (runner.Case, error) {
	items, err := values.Array[T](r, size)
	if err != nil {
		return runner.Case{}, err
	}
	q, err := queue.New[T](kind, size)
	if err != nil {
		return runner.Case{}, err
	}
	c, err := queue.NewChurn(q, items)
	if err != nil {
		return runner.Case{}, err
	}
	return runner.Case{
		Run:    c.DequeueAndEnqueue,
		Inputs: values.Fingerprint(items),
	}, nil
}

func branchCases(cfg config.Config) ([]runner.Case, error) {
	s, err := branch.NewSuite(values.NewLCG(int(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	fp := s.Inputs().Fingerprint()

	var cases []runner.Case
	for _, c := range s.Cases() {
		if !cfg.Selected(c.Name) {
			continue
		}
		cases = append(cases, runner.Case{
			Name:   c.Name,
			Run:    c.Run,
			Inputs: fp,
		})
	}
	return cases, nil
}
