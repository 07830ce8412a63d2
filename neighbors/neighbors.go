package neighbors

import (
	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/vec3"
)

// Neighbors is the single type integrators depend on, regardless of which
// backend constructor built it. It forwards every call to the wrapped
// Backend; see Backend for the contract.
type Neighbors struct {
	backend Backend
}

// NewAllPairsNeighbors wraps the trivial AllPairs backend.
func NewAllPairsNeighbors() *Neighbors {
	return &Neighbors{backend: NewAllPairs()}
}

// NewDirectedLinkedListNeighbors validates the given configuration and wraps
// a DirectedLinkedList backend.
//
//   - maxCutoff: the largest pair-potential interaction radius the caller
//     intends to evaluate.
//   - skin: the Verlet buffer; must be > 0.
//   - delay: steps after a rebuild before the first update check; first
//     check happens at step delay+1.
//   - stepsPerUpdateCheck: stride between update checks after the delay
//     window; must be >= 1.
//   - updatesPerSanityCheck: rebuilds between sanity audits; 0 disables
//     sanity checks.
func NewDirectedLinkedListNeighbors(
	maxCutoff, skin float64,
	delay, stepsPerUpdateCheck, updatesPerSanityCheck uint64,
) (*Neighbors, error) {
	backend, err := NewDirectedLinkedList(maxCutoff, skin, delay, stepsPerUpdateCheck, updatesPerSanityCheck)
	if err != nil {
		return nil, err
	}
	return &Neighbors{backend: backend}, nil
}

// Backend returns the wrapped backend, for callers that need
// backend-specific behavior (e.g. attaching a logger to a
// DirectedLinkedList).
func (n *Neighbors) Backend() Backend {
	return n.backend
}

// EnsureUpdated forwards to the wrapped backend.
func (n *Neighbors) EnsureUpdated(box *cell.UnitCell, positions []vec3.Vector3D) {
	n.backend.EnsureUpdated(box, positions)
}

// UpdateNeighbors forwards to the wrapped backend.
func (n *Neighbors) UpdateNeighbors(box *cell.UnitCell, positions []vec3.Vector3D) {
	n.backend.UpdateNeighbors(box, positions)
}

// EachI forwards to the wrapped backend.
func (n *Neighbors) EachI(op func(i int)) {
	n.backend.EachI(op)
}

// EachJ forwards to the wrapped backend.
func (n *Neighbors) EachJ(i int, op func(j int)) {
	n.backend.EachJ(i, op)
}

// PrintStatistics forwards to the wrapped backend.
func (n *Neighbors) PrintStatistics() {
	n.backend.PrintStatistics()
}

// Clone deep-copies the wrapped backend so the clone's cached adjacency and
// snapshot evolve independently of the original.
func (n *Neighbors) Clone() *Neighbors {
	return &Neighbors{backend: n.backend.Clone()}
}
