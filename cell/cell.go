// Package cell implements the simulation box: an orthorhombic (including
// cubic) periodic cell capable of computing minimum-image distances. It is a
// collaborator of package neighbors, not part of the neighbor-discovery core
// itself.
package cell

import (
	"fmt"
	"math"

	"github.com/nielsle/lumol/vec3"
)

// UnitCell is a rectangular (orthorhombic) simulation box with independent
// side lengths and independent periodicity per axis. Triclinic boxes are not
// supported; Distance2 only ever needs to consider the 27 (or fewer, per
// disabled axis) image translations of an orthorhombic lattice.
type UnitCell struct {
	lengths  vec3.Vector3D
	periodic [3]bool
}

// Cubic returns a fully periodic cubic cell with the given side length.
func Cubic(side float64) *UnitCell {
	return Orthorhombic(side, side, side)
}

// Orthorhombic returns a fully periodic orthorhombic cell.
func Orthorhombic(lx, ly, lz float64) *UnitCell {
	if lx <= 0 || ly <= 0 || lz <= 0 {
		panic(fmt.Sprintf("cell: non-positive side length: %v %v %v", lx, ly, lz))
	}
	return &UnitCell{
		lengths:  vec3.New(lx, ly, lz),
		periodic: [3]bool{true, true, true},
	}
}

// Infinite returns a cell with no periodic boundary at all, useful for
// finite (non-periodic) test systems.
func Infinite() *UnitCell {
	return &UnitCell{}
}

// Lengths returns the box side lengths.
func (c *UnitCell) Lengths() vec3.Vector3D {
	return c.lengths
}

// wrapComponent returns the minimum-image displacement along one axis.
func wrapComponent(d, length float64, periodic bool) float64 {
	if !periodic || length == 0 {
		return d
	}
	return d - length*math.Round(d/length)
}

// Vector returns the minimum-image vector from b to a: the shortest
// translate of (a - b) under the cell's periodic boundary conditions.
func (c *UnitCell) Vector(a, b vec3.Vector3D) vec3.Vector3D {
	d := a.Sub(b)
	return vec3.New(
		wrapComponent(d[0], c.lengths[0], c.periodic[0]),
		wrapComponent(d[1], c.lengths[1], c.periodic[1]),
		wrapComponent(d[2], c.lengths[2], c.periodic[2]),
	)
}

// Distance2 returns the squared minimum-image distance between a and b.
func (c *UnitCell) Distance2(a, b vec3.Vector3D) float64 {
	return c.Vector(a, b).Norm2()
}
