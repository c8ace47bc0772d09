package core

import "math/rand"

// RNG is the single ordered random sequence of a game session.
// Every procedural subsystem draws from the same RNG so a seed reproduces a run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniformly distributed integer in [min, max].
// Reversed bounds are swapped rather than rejected.
func (g *RNG) Range(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + g.r.Intn(max-min+1)
}

// Intn returns a uniformly distributed integer in [0, n).
// Returns 0 when n <= 0.
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}
