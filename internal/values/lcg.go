// Package values generates benchmark input data from explicitly seeded
// generators.
//
// Nothing in this package keeps random state at package level. Callers
// construct a generator, pass it into setup, and get the same inputs for
// the same seed on every run.
package values

// DefaultSeed seeds the branch input generator when no seed is configured.
const DefaultSeed = 7774755

const (
	lcgMultiplier = 77
	lcgIncrement  = 13218009
	lcgModulus    = 3687091
)

// LCG is a small linear congruential generator.
//
// The sequence is cheap to compute and stable across platforms, which keeps
// branch-prediction results comparable between machines. Not safe for
// concurrent use.
type LCG struct {
	state int
}

// NewLCG creates an LCG. The seed is reduced into [0, modulus).
func NewLCG(seed int) *LCG {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &LCG{state: s}
}

// Next advances the generator and returns the new state.
//
// Results are always in [0, 3687091).
func (g *LCG) Next() int {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return g.state
}
