package core

import "math/rand"

// RNG is a seeded random source with helpers for bounded values.
// Each subsystem owns its own RNG so streams stay independent.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a random source from the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the stream from a new seed.
func (g *RNG) Reseed(seed int64) {
	g.r = rand.New(rand.NewSource(seed))
}

// Float64 returns a value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Range returns a value uniformly distributed in [min, max).
func (g *RNG) Range(min, max float64) float64 {
	return g.r.Float64()*(max-min) + min
}

// Chance returns true with probability p.
func (g *RNG) Chance(p float64) bool {
	return g.r.Float64() < p
}
