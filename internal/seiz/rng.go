package seiz

import "math/rand"

// RNG is the single random source for a model run. Every stochastic decision
// (initial partition, contact trials, incubation, moderation) draws from it
// in a fixed documented order, which is what makes runs reproducible.
// Not safe for concurrent use; the engine runs single-threaded.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a seeded random source.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0,1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Intn returns a uniform draw in [0,n).
func (g *RNG) Intn(n int) int { return g.r.Intn(n) }

// Perm returns a random permutation of [0,n).
func (g *RNG) Perm(n int) []int { return g.r.Perm(n) }

// Shuffle pseudo-randomizes the order of n elements via swap.
func (g *RNG) Shuffle(n int, swap func(i, j int)) { g.r.Shuffle(n, swap) }
