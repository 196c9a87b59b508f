// Command microbench runs the queue and branch benchmark cases outside of
// `go test` and prints a results table.
//
// Usage:
//
//	go run ./cmd/microbench -config configs/default.yaml
//	go run ./cmd/microbench -duration 500ms -cases Single,And,Queue/deque/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/config"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/logger"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/report"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/runner"
)

func main() {
	configPath := flag.String("config", "", "path to a .yaml or .toml suite config (default: built-in sweep)")
	duration := flag.Duration("duration", 0, "time limit per case, overrides config")
	iterations := flag.Int("n", 0, "iteration limit per case, overrides config")
	cases := flag.String("cases", "", "comma-separated case names or prefixes ending in /, overrides config")
	logLevel := flag.String("log-level", "", "log level, overrides config")
	flag.Parse()

	if err := run(*configPath, *duration, *iterations, *cases, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "microbench:", err)
		os.Exit(1)
	}
}

func run(configPath string, duration time.Duration, iterations int, cases, logLevel string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	if duration > 0 {
		cfg.Duration = duration
	}
	if iterations > 0 {
		cfg.MaxIterations = iterations
	}
	if cases != "" {
		cfg.Cases = strings.Split(cases, ",")
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	all, err := buildCases(cfg)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if len(all) == 0 {
		return errors.New("no cases selected")
	}
	log.Info("starting",
		zap.Int("cases", len(all)),
		zap.Int64("seed", cfg.Seed),
		zap.Duration("duration", cfg.Duration),
		zap.Int("max_iterations", cfg.MaxIterations))

	r, err := runner.New(runner.Options{
		Duration:      cfg.Duration,
		MaxIterations: cfg.MaxIterations,
		Progress:      cfg.Progress,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, runErr := r.RunAll(ctx, all)
	if runErr != nil {
		log.Warn("run stopped early", zap.Error(runErr), zap.Int("completed", len(results)))
	}

	if err := report.Table(os.Stdout, results); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return runErr
}
