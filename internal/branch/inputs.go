// Package branch measures how the shape of an if-statement and the
// predictability of its input affect call cost.
//
// Every evaluator holds exactly one conditional. When the condition holds
// the primary argument is overwritten with 5; either way all arguments are
// handed to Consume, which the compiler cannot inline, so neither the branch
// nor its operands can be removed as dead code.
//
// Evaluators run over three pre-generated input buffers:
//   - Random: LCG output, unpredictable branches
//   - Sequential: 0, 1, 2, ... a regular taken/not-taken pattern
//   - Zeros: the branch always goes the same way
package branch

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

const (
	// Iterations is the number of evaluator calls per entry point.
	Iterations = 10000

	// MaxArgs is the widest evaluator. Buffers carry this many extra
	// elements so multi-argument cases can read inputs[i+3].
	MaxArgs = 4

	// InputLen is the required length of every input buffer.
	InputLen = Iterations + MaxArgs

	// RotateLen is the length of the array the rotate-index cases walk.
	RotateLen = 300
)

// ErrShortInput is returned when an input buffer cannot cover Iterations
// plus the widest evaluator.
var ErrShortInput = errors.New("branch: input buffer too short")

// Inputs holds the three buffers shared by every entry point.
type Inputs struct {
	Random     []int
	Sequential []int
	Zeros      []int
}

// NewInputs generates buffers of InputLen elements. Random values come from
// g, shifted down by one so that -1 can occur.
func NewInputs(g *values.LCG) Inputs {
	in := Inputs{
		Random:     make([]int, InputLen),
		Sequential: make([]int, InputLen),
		Zeros:      make([]int, InputLen),
	}
	for i := 0; i < InputLen; i++ {
		in.Random[i] = g.Next() - 1
		in.Sequential[i] = i
	}
	return in
}

func (in Inputs) validate() error {
	for name, buf := range map[string][]int{
		"random":     in.Random,
		"sequential": in.Sequential,
		"zeros":      in.Zeros,
	} {
		if len(buf) < InputLen {
			return fmt.Errorf("%w: %s has %d elements, need %d",
				ErrShortInput, name, len(buf), InputLen)
		}
	}
	return nil
}

// Fingerprint identifies the buffer contents for reports.
func (in Inputs) Fingerprint() uint64 {
	all := make([]int, 0, len(in.Random)+len(in.Sequential)+len(in.Zeros))
	all = append(all, in.Random...)
	all = append(all, in.Sequential...)
	all = append(all, in.Zeros...)
	return values.Fingerprint(all)
}
