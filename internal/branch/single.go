package branch

// Single-predicate evaluators. The modulus is a literal in each body so the
// compiler emits the same constant-divisor code the benchmark means to
// measure; a shared func(v, m int) would turn every case into a real divide.
//
// ModEqN overwrites when v%N == 0, ModNeN when v%N != 0. Each returns the
// primary argument it passed to Consume.

// On random input, mod 2 gives roughly a 50/50 split. Each larger modulus
// makes skipping the body (ModEq) or entering it (ModNe) more likely.

//go:noinline
func ModEq2(op1 int) int {
	if op1%2 == 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModEq3(op1 int) int {
	if op1%3 == 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModEq4(op1 int) int {
	if op1%4 == 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModEq5(op1 int) int {
	if op1%5 == 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModEq6(op1 int) int {
	if op1%6 == 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModNe2(op1 int) int {
	if op1%2 != 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModNe3(op1 int) int {
	if op1%3 != 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModNe4(op1 int) int {
	if op1%4 != 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModNe5(op1 int) int {
	if op1%5 != 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}

//go:noinline
func ModNe6(op1 int) int {
	if op1%6 != 0 {
		op1 = 5
	}
	Consume(op1, 0, 0, 0)
	return op1
}
