// Package vec3 implements arithmetic on three-component Cartesian vectors,
// the coordinate type shared by the cell, particles and neighbors packages.
package vec3

import (
	"fmt"
	"math"
)

// Vector3D is a three-component Cartesian vector. Unlike the general-purpose
// slice-backed vector types this module's teacher code used for
// arbitrary-dimensional optimization problems, positions and velocities in a
// particle simulation are always exactly three-dimensional, so Vector3D is an
// array and carries value semantics: copying a Vector3D copies its
// coordinates, which is what a position snapshot needs.
type Vector3D [3]float64

// New builds a Vector3D from its three components.
func New(x, y, z float64) Vector3D {
	return Vector3D{x, y, z}
}

// Zero is the additive identity.
var Zero = Vector3D{0, 0, 0}

// X, Y and Z return the individual components.
func (v Vector3D) X() float64 { return v[0] }
func (v Vector3D) Y() float64 { return v[1] }
func (v Vector3D) Z() float64 { return v[2] }

// Add returns v + other.
func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// SMul returns v scaled by s.
func (v Vector3D) SMul(s float64) Vector3D {
	return Vector3D{v[0] * s, v[1] * s, v[2] * s}
}

// Negate returns -v.
func (v Vector3D) Negate() Vector3D {
	return v.SMul(-1)
}

// Dot returns the dot product of v and other.
func (v Vector3D) Dot(other Vector3D) float64 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Norm2 returns the squared Euclidean norm of v, i.e. v.Dot(v).
func (v Vector3D) Norm2() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm of v.
func (v Vector3D) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged, matching the teacher vector package's treatment of degenerate
// inputs rather than dividing by zero.
func (v Vector3D) Normalized() Vector3D {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.SMul(1 / n)
}

// Distance2 returns the squared Euclidean distance between v and other,
// with no minimum-image adjustment. Use cell.UnitCell.Distance2 for periodic
// boundary conditions.
func (v Vector3D) Distance2(other Vector3D) float64 {
	return v.Sub(other).Norm2()
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v[0], v[1], v[2])
}

// CopySlice returns a new slice holding a copy of src, preserving element
// order. Used whenever a backend needs to snapshot particle positions.
func CopySlice(src []Vector3D) []Vector3D {
	out := make([]Vector3D, len(src))
	copy(out, src)
	return out
}
