package branch

// Case is one named entry point.
type Case struct {
	Name string
	Run  func()
}

// Cases returns every entry point of s in a stable order.
func (s *Suite) Cases() []Case {
	return []Case{
		{"Single", s.Single},
		{"Single3", s.Single3},
		{"Single4", s.Single4},
		{"Single5", s.Single5},
		{"Single6", s.Single6},
		{"SingleRev", s.SingleRev},
		{"SingleRev3", s.SingleRev3},
		{"SingleRev4", s.SingleRev4},
		{"SingleRev5", s.SingleRev5},
		{"SingleRev6", s.SingleRev6},
		{"SingleSeq", s.SingleSeq},
		{"SingleSeq3", s.SingleSeq3},
		{"SingleSeq4", s.SingleSeq4},
		{"SingleSeq5", s.SingleSeq5},
		{"SingleSeq6", s.SingleSeq6},
		{"SingleSeqRev", s.SingleSeqRev},
		{"SingleSeqRev3", s.SingleSeqRev3},
		{"SingleSeqRev4", s.SingleSeqRev4},
		{"SingleSeqRev5", s.SingleSeqRev5},
		{"SingleSeqRev6", s.SingleSeqRev6},
		{"SingleSeqAlways", s.SingleSeqAlways},
		{"SingleSeqAlwaysNever", s.SingleSeqAlwaysNever},
		{"MoveNext", s.MoveNext},
		{"MoveNextMod", s.MoveNextMod},
		{"And", s.And},
		{"AndAnd", s.AndAnd},
		{"AndAndAnd", s.AndAndAnd},
		{"Or", s.Or},
		{"OrOr", s.OrOr},
		{"AndOr", s.AndOr},
		{"SingleArray", s.SingleArray},
		{"AndArray", s.AndArray},
		{"OrArray", s.OrArray},
	}
}

// ============================================================================
// Random input: ModEq skips the body more often as the modulus grows,
// ModNe enters it more often.
// ============================================================================

func (s *Suite) Single() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModEq2(in[i])
	}
}

func (s *Suite) Single3() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModEq3(in[i])
	}
}

func (s *Suite) Single4() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModEq4(in[i])
	}
}

func (s *Suite) Single5() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModEq5(in[i])
	}
}

func (s *Suite) Single6() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModEq6(in[i])
	}
}

func (s *Suite) SingleRev() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModNe2(in[i])
	}
}

func (s *Suite) SingleRev3() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModNe3(in[i])
	}
}

func (s *Suite) SingleRev4() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModNe4(in[i])
	}
}

func (s *Suite) SingleRev5() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModNe5(in[i])
	}
}

func (s *Suite) SingleRev6() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		ModNe6(in[i])
	}
}

// ============================================================================
// Sequential input: mod N gives one pass followed by N-1 fails (ModEq), or
// the reverse (ModNe), in a strictly regular pattern.
// ============================================================================

func (s *Suite) SingleSeq() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModEq2(in[i])
	}
}

func (s *Suite) SingleSeq3() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModEq3(in[i])
	}
}

func (s *Suite) SingleSeq4() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModEq4(in[i])
	}
}

func (s *Suite) SingleSeq5() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModEq5(in[i])
	}
}

func (s *Suite) SingleSeq6() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModEq6(in[i])
	}
}

func (s *Suite) SingleSeqRev() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModNe2(in[i])
	}
}

func (s *Suite) SingleSeqRev3() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModNe3(in[i])
	}
}

func (s *Suite) SingleSeqRev4() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModNe4(in[i])
	}
}

func (s *Suite) SingleSeqRev5() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModNe5(in[i])
	}
}

func (s *Suite) SingleSeqRev6() {
	in := s.in.Sequential
	for i := 0; i < Iterations; i++ {
		ModNe6(in[i])
	}
}

// ============================================================================
// Zero input: the branch is always taken, or never.
// ============================================================================

func (s *Suite) SingleSeqAlways() {
	in := s.in.Zeros
	for i := 0; i < Iterations; i++ {
		ModEq2(in[i])
	}
}

func (s *Suite) SingleSeqAlwaysNever() {
	in := s.in.Zeros
	for i := 0; i < Iterations; i++ {
		ModNe2(in[i])
	}
}

// ============================================================================
// Rotate index
// ============================================================================

func (s *Suite) MoveNext() {
	index := 0
	for i := 0; i < Iterations; i++ {
		s.Advance(&index)
	}
}

func (s *Suite) MoveNextMod() {
	index := 0
	for i := 0; i < Iterations; i++ {
		s.AdvanceMod(&index)
	}
}

// ============================================================================
// Compound conditions over adjacent random inputs
// ============================================================================

func (s *Suite) And() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		And2(in[i], in[i+1])
	}
}

func (s *Suite) AndAnd() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		And3(in[i], in[i+1], in[i+2])
	}
}

func (s *Suite) AndAndAnd() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		And4(in[i], in[i+1], in[i+2], in[i+3])
	}
}

func (s *Suite) Or() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		Or2(in[i], in[i+1])
	}
}

func (s *Suite) OrOr() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		Or3(in[i], in[i+1], in[i+2])
	}
}

func (s *Suite) AndOr() {
	in := s.in.Random
	for i := 0; i < Iterations; i++ {
		AndOr(in[i], in[i+1], in[i+2])
	}
}

// ============================================================================
// Array-indexed: the loop counter is the argument, the evaluator loads.
// ============================================================================

func (s *Suite) SingleArray() {
	for i := 0; i < Iterations; i++ {
		s.ArrayModEq2(i)
	}
}

func (s *Suite) AndArray() {
	for i := 0; i < Iterations; i++ {
		s.ArrayAnd2(i, i+1)
	}
}

func (s *Suite) OrArray() {
	for i := 0; i < Iterations; i++ {
		s.ArrayOr2(i, i+1)
	}
}
