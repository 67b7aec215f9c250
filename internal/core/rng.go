package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Seed fills the current generation of g so each cell is alive with
// probability density. A density outside [0, 1] is clamped; 0 leaves every
// cell dead.
func Seed(g *GridBuffer, seed int64, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = cellValue(rng.Chance(density))
	}
}
