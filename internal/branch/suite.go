package branch

import "github.com/randomizedcoder/branch-queue-benchmarks/internal/values"

// Suite owns the input buffers and the rotate array for one benchmark run.
//
// Setup (NewSuite) is excluded from timing; each entry point is one timed
// call of Iterations evaluator invocations.
type Suite struct {
	in     Inputs
	rotate []int
}

// NewSuite generates inputs from g and returns a ready Suite.
func NewSuite(g *values.LCG) (*Suite, error) {
	return NewSuiteFromInputs(NewInputs(g))
}

// NewSuiteFromInputs builds a Suite over caller-supplied buffers.
//
// Buffers shorter than InputLen fail with ErrShortInput; the entry points
// index without bounds checks of their own.
func NewSuiteFromInputs(in Inputs) (*Suite, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return &Suite{
		in:     in,
		rotate: make([]int, RotateLen),
	}, nil
}

// Inputs returns the buffers the suite iterates over.
func (s *Suite) Inputs() Inputs {
	return s.in
}

// Array-indexed evaluators load the operand from the random buffer at the
// given position, so the branch depends on a memory load. As elsewhere the
// (possibly overwritten) first argument is what reaches Consume.

// ArrayModEq2 overwrites op1 when Random[op1] is even.
//
//go:noinline
func (s *Suite) ArrayModEq2(op1 int) int {
	if s.in.Random[op1]%2 == 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

// ArrayAnd2 overwrites op1 when Random[op1] and Random[op2] are both even.
//
//go:noinline
func (s *Suite) ArrayAnd2(op1, op2 int) int {
	if s.in.Random[op1]%2 == 0 && s.in.Random[op2]%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, 0, 0)
	return op1
}

// ArrayOr2 overwrites op1 when Random[op1] or Random[op2] is even.
//
//go:noinline
func (s *Suite) ArrayOr2(op1, op2 int) int {
	if s.in.Random[op1]%2 == 0 || s.in.Random[op2]%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, 0, 0)
	return op1
}

// Advance moves index one step around the rotate array, wrapping to zero
// with a comparison and a rarely taken branch.
//
//go:noinline
func (s *Suite) Advance(index *int) {
	tmp := *index + 1
	if tmp == len(s.rotate) {
		tmp = 0
	}
	*index = tmp
}

// AdvanceMod is Advance written with a remainder. Whether it is slower
// depends on the machine, so both are measured.
//
//go:noinline
func (s *Suite) AdvanceMod(index *int) {
	*index = (*index + 1) % len(s.rotate)
}
