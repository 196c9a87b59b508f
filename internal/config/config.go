// Package config loads benchmark suite configuration from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/logger"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/queue"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

const (
	SuiteQueue  = "queue"
	SuiteBranch = "branch"

	ElementInt    = "int"
	ElementString = "string"
	ElementUUID   = "uuid"
)

// ErrFormat is returned for a config file with an unsupported extension.
var ErrFormat = errors.New("config: unsupported file format")

type Config struct {
	Seed     int64    `yaml:"seed" toml:"seed"`
	Suites   []string `yaml:"suites" toml:"suites"`
	Sizes    []int    `yaml:"sizes" toml:"sizes"`
	Elements []string `yaml:"elements" toml:"elements"`
	FIFOs    []string `yaml:"fifos" toml:"fifos"`

	// Cases restricts the run to these case names, or name prefixes ending
	// in "/". Empty runs everything.
	Cases []string `yaml:"cases" toml:"cases"`

	Duration      time.Duration `yaml:"duration" toml:"duration"`
	MaxIterations int           `yaml:"max_iterations" toml:"max_iterations"`
	Progress      time.Duration `yaml:"progress" toml:"progress"`

	Log logger.Config `yaml:"log" toml:"log"`
}

// Default returns the full sweep: both suites, sizes 10/100/1000, all three
// element types on the deque.
func Default() Config {
	return Config{
		Seed:     values.DefaultSeed,
		Suites:   []string{SuiteQueue, SuiteBranch},
		Sizes:    []int{10, 100, 1000},
		Elements: []string{ElementInt, ElementString, ElementUUID},
		FIFOs:    []string{string(queue.KindDeque)},
		Duration: time.Second,
		Progress: 250 * time.Millisecond,
		Log: logger.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// Selected reports whether the case name passes the Cases filter.
func (c *Config) Selected(name string) bool {
	if len(c.Cases) == 0 {
		return true
	}
	for _, f := range c.Cases {
		if f == name {
			return true
		}
		if strings.HasSuffix(f, "/") && strings.HasPrefix(name, f) {
			return true
		}
	}
	return false
}

// HasSuite reports whether the named suite is enabled.
func (c *Config) HasSuite(name string) bool {
	return slices.Contains(c.Suites, name)
}

func (c *Config) validate() error {
	if len(c.Suites) == 0 {
		return errors.New("suites is empty")
	}
	for _, s := range c.Suites {
		if s != SuiteQueue && s != SuiteBranch {
			return fmt.Errorf("unknown suite %q", s)
		}
	}

	if c.HasSuite(SuiteQueue) {
		if len(c.Sizes) == 0 {
			return errors.New("sizes is empty")
		}
		for _, n := range c.Sizes {
			if n <= 0 {
				return fmt.Errorf("size must be positive, got %d", n)
			}
		}

		if len(c.Elements) == 0 {
			return errors.New("elements is empty")
		}
		for _, e := range c.Elements {
			if e != ElementInt && e != ElementString && e != ElementUUID {
				return fmt.Errorf("unknown element type %q", e)
			}
		}

		if len(c.FIFOs) == 0 {
			return errors.New("fifos is empty")
		}
		for _, f := range c.FIFOs {
			if _, err := queue.ParseKind(f); err != nil {
				return err
			}
		}
	}

	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", c.Duration)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}
	if c.Duration == 0 && c.MaxIterations == 0 {
		return errors.New("unbounded run: set duration or max_iterations")
	}

	return nil
}

// Load reads path, overlays it on Default and validates the result.
// The format follows the extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &c); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &c); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks a config built in code, such as Default with flag
// overrides applied.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
