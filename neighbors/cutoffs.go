package neighbors

import (
	"fmt"

	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/vec3"
)

// Cutoffs holds the two length scales that define correctness of a cached
// neighbor list: the interaction radius the caller intends to evaluate
// pair-potentials out to, and the Verlet skin buffer added around it.
//
// Both fields are set once at construction and never mutated afterwards;
// only the derived squared quantities below are ever read on the hot path.
type Cutoffs struct {
	MaxCutoff float64
	Skin      float64
}

// NewCutoffs validates and constructs a Cutoffs. Skin must be strictly
// positive: a zero or negative skin can never buffer against drift, which
// would make every EnsureUpdated call force a rebuild.
func NewCutoffs(maxCutoff, skin float64) (Cutoffs, error) {
	if skin <= 0 {
		return Cutoffs{}, fmt.Errorf("neighbors: skin must be > 0, got %v", skin)
	}
	if maxCutoff <= 0 {
		return Cutoffs{}, fmt.Errorf("neighbors: max cutoff must be > 0, got %v", maxCutoff)
	}
	return Cutoffs{MaxCutoff: maxCutoff, Skin: skin}, nil
}

// MaxCutoff2 returns MaxCutoff squared: the threshold below which a pair
// must be present in the neighbor list.
func (c Cutoffs) MaxCutoff2() float64 {
	return c.MaxCutoff * c.MaxCutoff
}

// Skin2 returns Skin squared: if any particle's squared displacement since
// the last rebuild exceeds this, the list must be rebuilt.
func (c Cutoffs) Skin2() float64 {
	return c.Skin * c.Skin
}

// UpdateCutoff2 returns (MaxCutoff + 2*Skin) squared: the buffered radius
// used when populating the list during a rebuild. The factor of two
// accounts for two particles each drifting by up to Skin between rebuilds.
func (c Cutoffs) UpdateCutoff2() float64 {
	r := c.MaxCutoff + 2*c.Skin
	return r * r
}

// NeedsUpdate reports whether any particle has moved far enough from its
// position at the last rebuild (snapshot) to require a new one: as soon as
// one particle's minimum-image squared displacement exceeds Skin2, it
// returns true without examining the rest.
//
// len(snapshot) must equal len(positions); a mismatch means a caller resized
// the system without forcing a rebuild, which is a programmer error.
func (c Cutoffs) NeedsUpdate(snapshot []vec3.Vector3D, box *cell.UnitCell, positions []vec3.Vector3D) bool {
	if len(snapshot) != len(positions) {
		panic(fmt.Sprintf(
			"neighbors: snapshot length %d does not match particle count %d", len(snapshot), len(positions)))
	}
	skin2 := c.Skin2()
	for i := range positions {
		if box.Distance2(snapshot[i], positions[i]) > skin2 {
			return true
		}
	}
	return false
}
