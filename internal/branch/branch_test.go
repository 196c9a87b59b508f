package branch_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/branch"
	"github.com/randomizedcoder/branch-queue-benchmarks/internal/values"
)

const overwritten = 5

// probe values cover negatives (Random can hold -1), zero and both parities.
var probe = []int{-7, -6, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 30, 31, 60, 3687089}

// expect returns the primary argument Consume should see.
func expect(v int, hit bool) int {
	if hit {
		return overwritten
	}
	return v
}

func TestSingle(t *testing.T) {
	eq := map[int]func(int) int{
		2: branch.ModEq2, 3: branch.ModEq3, 4: branch.ModEq4, 5: branch.ModEq5, 6: branch.ModEq6,
	}
	ne := map[int]func(int) int{
		2: branch.ModNe2, 3: branch.ModNe3, 4: branch.ModNe4, 5: branch.ModNe5, 6: branch.ModNe6,
	}

	for m := 2; m <= 6; m++ {
		t.Run(fmt.Sprintf("mod%d", m), func(t *testing.T) {
			for _, v := range probe {
				assert.Equal(t, expect(v, v%m == 0), eq[m](v), "ModEq%d(%d)", m, v)
				assert.Equal(t, expect(v, v%m != 0), ne[m](v), "ModNe%d(%d)", m, v)
			}
		})
	}
}

func TestSingle_Examples(t *testing.T) {
	assert.Equal(t, 5, branch.ModEq2(4), "4 mod 2 == 0 overwrites")
	assert.Equal(t, 3, branch.ModEq2(3), "odd input is not overwritten")
	assert.Equal(t, 7, branch.ModEq2(7))
	assert.Equal(t, 5, branch.ModNe2(7))
	assert.Equal(t, 4, branch.ModNe2(4))
}

func even(v int) bool { return v%2 == 0 }

func TestConjunctions(t *testing.T) {
	for _, a := range probe {
		for _, b := range probe {
			assert.Equal(t, expect(a, even(a) && even(b)), branch.And2(a, b))
			for _, c := range []int{0, 1, -1} {
				assert.Equal(t, expect(a, even(a) && even(b) && even(c)), branch.And3(a, b, c))
				for _, d := range []int{2, 3} {
					assert.Equal(t, expect(a, even(a) && even(b) && even(c) && even(d)), branch.And4(a, b, c, d))
				}
			}
		}
	}
}

func TestDisjunctions(t *testing.T) {
	for _, a := range probe {
		for _, b := range probe {
			assert.Equal(t, expect(a, even(a) || even(b)), branch.Or2(a, b))
			for _, c := range []int{0, 1, -1} {
				assert.Equal(t, expect(a, even(a) || even(b) || even(c)), branch.Or3(a, b, c))
				assert.Equal(t, expect(a, (even(a) && even(b)) || even(c)), branch.AndOr(a, b, c))
			}
		}
	}
}

func TestAndOr_Example(t *testing.T) {
	// (2%2==0 && 4%2==0) || 1%2==0 -> true
	assert.Equal(t, 5, branch.AndOr(2, 4, 1))
	// (3%2==0 && 4%2==0) || 1%2==0 -> false
	assert.Equal(t, 3, branch.AndOr(3, 4, 1))
	// (3%2==0 && 4%2==0) || 6%2==0 -> true
	assert.Equal(t, 5, branch.AndOr(3, 4, 6))
}

func newSuite(t *testing.T) *branch.Suite {
	t.Helper()
	s, err := branch.NewSuite(values.NewLCG(values.DefaultSeed))
	require.NoError(t, err)
	return s
}

func TestInputs(t *testing.T) {
	in := branch.NewInputs(values.NewLCG(values.DefaultSeed))

	require.Len(t, in.Random, branch.InputLen)
	require.Len(t, in.Sequential, branch.InputLen)
	require.Len(t, in.Zeros, branch.InputLen)

	// First LCG value for the default seed is 3504129.
	assert.Equal(t, 3504128, in.Random[0])
	for i := 0; i < branch.InputLen; i++ {
		assert.Equal(t, i, in.Sequential[i])
		assert.Equal(t, 0, in.Zeros[i])
		assert.GreaterOrEqual(t, in.Random[i], -1)
	}

	again := branch.NewInputs(values.NewLCG(values.DefaultSeed))
	assert.Equal(t, in.Fingerprint(), again.Fingerprint())
	other := branch.NewInputs(values.NewLCG(1))
	assert.NotEqual(t, in.Fingerprint(), other.Fingerprint())
}

func TestArrayIndexed(t *testing.T) {
	s := newSuite(t)
	r := s.Inputs().Random

	for i := 0; i < 200; i++ {
		assert.Equal(t, expect(i, even(r[i])), s.ArrayModEq2(i))
		assert.Equal(t, expect(i, even(r[i]) && even(r[i+1])), s.ArrayAnd2(i, i+1))
		assert.Equal(t, expect(i, even(r[i]) || even(r[i+1])), s.ArrayOr2(i, i+1))
	}
}

func TestAdvance(t *testing.T) {
	s := newSuite(t)

	for _, advance := range []func(*int){s.Advance, s.AdvanceMod} {
		index := 0
		for i := 1; i < branch.RotateLen; i++ {
			advance(&index)
			require.Equal(t, i, index)
		}
		advance(&index)
		require.Equal(t, 0, index, "index must wrap to zero at the array length")
	}
}

func TestAdvance_Agree(t *testing.T) {
	s := newSuite(t)

	a, b := 0, 0
	for i := 0; i < branch.Iterations; i++ {
		s.Advance(&a)
		s.AdvanceMod(&b)
		require.Equal(t, a, b)
	}
}

func TestNewSuiteFromInputs_Short(t *testing.T) {
	in := branch.NewInputs(values.NewLCG(values.DefaultSeed))
	in.Zeros = in.Zeros[:branch.Iterations]

	_, err := branch.NewSuiteFromInputs(in)
	require.ErrorIs(t, err, branch.ErrShortInput)
}

func TestCases(t *testing.T) {
	s := newSuite(t)
	cases := s.Cases()

	assert.Len(t, cases, 33)
	seen := make(map[string]bool)
	for _, c := range cases {
		require.NotEmpty(t, c.Name)
		require.False(t, seen[c.Name], "duplicate case %s", c.Name)
		seen[c.Name] = true

		// Every entry point must run to completion without indexing past
		// the buffers.
		require.NotPanics(t, c.Run, c.Name)
	}
}
