// Package rand abstracts the random number source used to seed initial
// particle velocities, so that simulations can be reproduced from a fixed
// seed without the particles and config packages depending directly on
// math/rand.
package rand

import mathrand "math/rand"

// Rand is the minimal random number source the simulation setup needs:
// uniform floats for direction sampling and normally-distributed floats for
// Boltzmann velocity components.
type Rand interface {
	Float64() float64
	NormFloat64() float64
}

// Standard wraps a *math/rand.Rand seeded deterministically, so that a
// config-supplied seed reproduces identical initial velocities.
type Standard struct {
	r *mathrand.Rand
}

// NewStandard returns a Standard source seeded with seed.
func NewStandard(seed int64) *Standard {
	return &Standard{r: mathrand.New(mathrand.NewSource(seed))}
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Standard) Float64() float64 { return s.r.Float64() }

// NormFloat64 returns a normally distributed float64 with mean 0, stddev 1.
func (s *Standard) NormFloat64() float64 { return s.r.NormFloat64() }
