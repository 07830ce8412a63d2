package neighbors

import (
	"fmt"

	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/nursery"
	"github.com/nielsle/lumol/vec3"
)

// AllPairs is the degenerate neighbor list: it enumerates every pair
// directly, with no adjacency storage and no drift logic at all. It is
// useful as a correctness oracle for DirectedLinkedList, and as the backend
// of choice for systems small enough that O(N^2) pair enumeration is cheaper
// than maintaining a Verlet list.
type AllPairs struct {
	natoms      int
	initialized bool
}

// NewAllPairs returns an AllPairs backend with no particles yet registered.
func NewAllPairs() *AllPairs {
	return &AllPairs{}
}

// EnsureUpdated and UpdateNeighbors are equivalent for AllPairs: there is no
// cached state whose validity depends on how much time has passed, only the
// particle count.
func (a *AllPairs) EnsureUpdated(box *cell.UnitCell, positions []vec3.Vector3D) {
	a.UpdateNeighbors(box, positions)
}

// UpdateNeighbors records the current particle count. The cell is unused:
// AllPairs has no stored adjacency for it to invalidate.
func (a *AllPairs) UpdateNeighbors(_ *cell.UnitCell, positions []vec3.Vector3D) {
	a.natoms = len(positions)
	a.initialized = true
}

// EachI invokes op(i) for every particle index, fanned out across worker
// goroutines.
func (a *AllPairs) EachI(op func(i int)) {
	if !a.initialized {
		panic("neighbors: AllPairs not initialized; call EnsureUpdated or UpdateNeighbors first")
	}
	nursery.RunIndices(a.natoms, op)
}

// EachJ invokes op(j) sequentially for every j in [0, i), the full
// lower-triangular neighborhood of i.
func (a *AllPairs) EachJ(i int, op func(j int)) {
	if i < 0 || i >= a.natoms {
		panic(fmt.Sprintf("neighbors: EachJ index %d out of range [0, %d)", i, a.natoms))
	}
	for j := 0; j < i; j++ {
		op(j)
	}
}

// PrintStatistics is a no-op: AllPairs keeps no statistics to report.
func (a *AllPairs) PrintStatistics() {}

// Clone returns an independent copy.
func (a *AllPairs) Clone() Backend {
	clone := *a
	return &clone
}
