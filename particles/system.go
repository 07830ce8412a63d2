// Package particles holds the struct-of-arrays particle container consumed
// by package neighbors. It is an external collaborator of the
// neighbor-discovery core, not part of it: force evaluation, bonded
// potentials and full time integration all live outside this package.
package particles

import (
	"fmt"
	"math"

	"github.com/nielsle/lumol/rand"
	"github.com/nielsle/lumol/vec3"
)

// System is a dense, struct-of-arrays particle container. All four slices
// are kept the same length; resizing one without the others is a programmer
// error and every mutator below panics if it is asked to.
type System struct {
	Species  []string
	Position []vec3.Vector3D
	Velocity []vec3.Vector3D
	Mass     []float64
}

// New returns an empty system with no particles.
func New() *System {
	return &System{}
}

// Len returns the number of particles, N.
func (s *System) Len() int {
	return len(s.Position)
}

func (s *System) checkInvariant() {
	n := len(s.Position)
	if len(s.Species) != n || len(s.Velocity) != n || len(s.Mass) != n {
		panic(fmt.Sprintf(
			"particles: struct-of-arrays length mismatch: species=%d position=%d velocity=%d mass=%d",
			len(s.Species), n, len(s.Velocity), len(s.Mass)))
	}
}

// Add appends one particle and returns its index.
func (s *System) Add(species string, position vec3.Vector3D, mass float64) int {
	s.checkInvariant()
	s.Species = append(s.Species, species)
	s.Position = append(s.Position, position)
	s.Velocity = append(s.Velocity, vec3.Zero)
	s.Mass = append(s.Mass, mass)
	return len(s.Position) - 1
}

// CubicLattice fills a system with an n×n×n simple-cubic lattice of species
// with the given mass, spaced by spacing, starting at the origin. This
// mirrors the hand-built Argon crystal in the original benchmark
// (examples/md_lj_scaling.rs): three nested loops placing one particle per
// lattice site.
func CubicLattice(n int, spacing float64, species string, mass float64) *System {
	s := New()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				pos := vec3.New(float64(i)*spacing, float64(j)*spacing, float64(k)*spacing)
				s.Add(species, pos, mass)
			}
		}
	}
	return s
}

// SeedBoltzmannVelocities draws each velocity component from a
// Maxwell-Boltzmann distribution at the given temperature (in the same unit
// system as Mass and the Boltzmann constant, left to the caller to supply in
// consistent units), then removes net linear momentum so the system does not
// drift as a whole.
func (s *System) SeedBoltzmannVelocities(temperature, boltzmannConst float64, r rand.Rand) {
	s.checkInvariant()
	for i := range s.Velocity {
		sigma := math.Sqrt(boltzmannConst * temperature / s.Mass[i])
		s.Velocity[i] = vec3.New(
			r.NormFloat64()*sigma,
			r.NormFloat64()*sigma,
			r.NormFloat64()*sigma,
		)
	}
	s.removeNetMomentum()
}

func (s *System) removeNetMomentum() {
	var totalP vec3.Vector3D
	var totalMass float64
	for i := range s.Velocity {
		totalP = totalP.Add(s.Velocity[i].SMul(s.Mass[i]))
		totalMass += s.Mass[i]
	}
	if totalMass == 0 {
		return
	}
	drift := totalP.SMul(1 / totalMass)
	for i := range s.Velocity {
		s.Velocity[i] = s.Velocity[i].Sub(drift)
	}
}

