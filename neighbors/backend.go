// Package neighbors implements the neighbor-discovery core of the
// simulation engine: the data structure and control loop that decide, at
// every integration step, which ordered pairs of particles are close enough
// to require pair-force evaluation.
package neighbors

import (
	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/vec3"
)

// Backend is the capability set both neighbor-list implementations expose.
// The original design enumerates AllPairs and DirectedLinkedList as a
// closed, hand-dispatched sum type, because its source language cannot give
// each_i and each_j generic closure parameters on a trait object. Go's
// interfaces have no such restriction, so Backend is modeled directly as an
// interface: this is the alternative shape the original design notes
// explicitly sanction for languages without that limitation.
type Backend interface {
	// EnsureUpdated checks whether the list needs rebuilding given the
	// current positions, and rebuilds it if so.
	EnsureUpdated(box *cell.UnitCell, positions []vec3.Vector3D)

	// UpdateNeighbors forces an unconditional rebuild.
	UpdateNeighbors(box *cell.UnitCell, positions []vec3.Vector3D)

	// EachI calls op(i) once for every i that may start an edge, i.e. every
	// particle index in [0, N). Implementations are free to call op from
	// multiple goroutines concurrently; op must tolerate that.
	EachI(op func(i int))

	// EachJ calls op(j) once for every j < i stored as a neighbor of i, in
	// ascending order. Unlike EachI's visitor, op here runs on a single
	// goroutine and may hold per-i mutable state.
	EachJ(i int, op func(j int))

	// PrintStatistics reports accumulated CountDown statistics. AllPairs,
	// which has none, implements this as a no-op.
	PrintStatistics()

	// Clone returns a deep copy that evolves independently of the
	// original: mutating one's cached adjacency or snapshot never affects
	// the other.
	Clone() Backend
}
