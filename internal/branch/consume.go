package branch

// Consume is the sink every evaluator calls with its (possibly overwritten)
// operands. Unused slots are passed as zero.
//
// It must stay out of line: once inlined, the empty body would let the
// compiler drop the branch that feeds it.
//
//go:noinline
func Consume(op1, op2, op3, op4 int) {}
