package branch

// Compound evaluators: short-circuit && and || over adjacent inputs, all
// with modulus 2. Operands after the first reach Consume unchanged.

// And2 overwrites op1 when both operands are even.
//
//go:noinline
func And2(op1, op2 int) int {
	if op1%2 == 0 && op2%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, 0, 0)
	return op1
}

// And3 overwrites op1 when all three operands are even.
//
//go:noinline
func And3(op1, op2, op3 int) int {
	if op1%2 == 0 && op2%2 == 0 && op3%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, op3, 0)
	return op1
}

// And4 overwrites op1 when all four operands are even.
//
//go:noinline
func And4(op1, op2, op3, op4 int) int {
	if op1%2 == 0 && op2%2 == 0 && op3%2 == 0 && op4%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, op3, op4)
	return op1
}

// Or2 overwrites op1 when either operand is even.
//
//go:noinline
func Or2(op1, op2 int) int {
	if op1%2 == 0 || op2%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, 0, 0)
	return op1
}

// Or3 overwrites op1 when any operand is even.
//
//go:noinline
func Or3(op1, op2, op3 int) int {
	if op1%2 == 0 || op2%2 == 0 || op3%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, op3, 0)
	return op1
}

// AndOr overwrites op1 when (op1 and op2 are even) or op3 is even.
//
//go:noinline
func AndOr(op1, op2, op3 int) int {
	if op1%2 == 0 && op2%2 == 0 || op3%2 == 0 {
		op1 = 5
	}
	Consume(op1, op2, op3, 0)
	return op1
}
