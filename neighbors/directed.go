package neighbors

import (
	"fmt"

	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/nursery"
	"github.com/nielsle/lumol/vec3"
	"github.com/rs/zerolog"
)

// DirectedLinkedList is a buffered Verlet neighbor list stored as a directed
// lower-triangular adjacency: edges[i] holds every j < i within
// UpdateCutoff2 of i, as of the last rebuild. Between rebuilds, the list is
// valid as long as no particle has drifted more than Skin from its position
// at the snapshot.
type DirectedLinkedList struct {
	countdown   *CountDown
	cutoffs     Cutoffs
	edges       [][]int
	snapshot    []vec3.Vector3D
	initialized bool
	logger      zerolog.Logger
}

// NewDirectedLinkedList validates its configuration and constructs an empty,
// uninitialized DirectedLinkedList. updatesPerSanityCheck of 0 disables the
// O(N^2) sanity audit entirely.
func NewDirectedLinkedList(
	maxCutoff, skin float64,
	delay, stepsPerUpdateCheck, updatesPerSanityCheck uint64,
) (*DirectedLinkedList, error) {
	cutoffs, err := NewCutoffs(maxCutoff, skin)
	if err != nil {
		return nil, err
	}
	countdown, err := NewCountDown(delay, stepsPerUpdateCheck, updatesPerSanityCheck)
	if err != nil {
		return nil, err
	}
	return &DirectedLinkedList{
		countdown: countdown,
		cutoffs:   cutoffs,
		logger:    zerolog.Nop(),
	}, nil
}

// SetLogger attaches a zerolog.Logger used for sanity-check failures and
// statistics reports. Passing the zero Logger is equivalent to never calling
// SetLogger: both are silently discarded, following zerolog's own nil-safe
// idiom.
func (d *DirectedLinkedList) SetLogger(logger zerolog.Logger) {
	d.logger = logger
}

// EnsureUpdated is the per-step entry point. It runs three nested guards in
// increasing order of cost: the O(1) temporal gate, the O(N) drift gate, and
// only then the O(N^2) rebuild (optionally preceded by an O(N^2) sanity
// check of the outgoing list).
func (d *DirectedLinkedList) EnsureUpdated(box *cell.UnitCell, positions []vec3.Vector3D) {
	if !d.countdown.NeedsUpdateCheck() {
		return
	}
	if !d.cutoffs.NeedsUpdate(d.snapshot, box, positions) {
		return
	}
	if d.countdown.NeedsSanityCheck() {
		// The sanity check runs against the list about to be replaced, so a
		// violation blames the outgoing list rather than the new one.
		d.SanityCheck(box, positions)
	}
	d.UpdateNeighbors(box, positions)
}

// UpdateNeighbors forces a rebuild: it discards the current edges, rescans
// every pair j < i against UpdateCutoff2, and snapshots positions.
func (d *DirectedLinkedList) UpdateNeighbors(box *cell.UnitCell, positions []vec3.Vector3D) {
	n := len(positions)
	updateCutoff2 := d.cutoffs.UpdateCutoff2()

	edges := make([][]int, n)
	for i := 0; i < n; i++ {
		xi := positions[i]
		var ni []int
		for j := 0; j < i; j++ {
			if box.Distance2(xi, positions[j]) < updateCutoff2 {
				ni = append(ni, j)
			}
		}
		edges[i] = ni
	}

	d.edges = edges
	d.snapshot = vec3.CopySlice(positions)
	d.initialized = true
}

// SanityCheck audits every pair j < i with squared minimum-image distance
// below MaxCutoff2 against the current edges, panicking if any such pair is
// missing. It is an O(N^2) operation, intended to run rarely.
func (d *DirectedLinkedList) SanityCheck(box *cell.UnitCell, positions []vec3.Vector3D) {
	maxCutoff2 := d.cutoffs.MaxCutoff2()
	for i := range positions {
		xi := positions[i]
		for j := 0; j < i; j++ {
			xj := positions[j]
			r2 := box.Distance2(xi, xj)
			if r2 < maxCutoff2 && !containsInt(d.edges[i], j) {
				d.logger.Error().
					Int("i", i).Int("j", j).
					Interface("xi", xi).Interface("xj", xj).
					Float64("r2", r2).
					Msg("neighbor list sanity check failed: missing pair")
				panic(fmt.Sprintf(
					"neighbors: sanity check failed: pair (i=%d, j=%d) missing from list; xi=%v xj=%v r2=%v",
					i, j, xi, xj, r2))
			}
		}
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// EachI invokes op(i) for every i that may start an edge, fanned out across
// worker goroutines.
func (d *DirectedLinkedList) EachI(op func(i int)) {
	if !d.initialized {
		panic("neighbors: DirectedLinkedList not initialized; call EnsureUpdated or UpdateNeighbors first")
	}
	nursery.RunIndices(len(d.edges), op)
}

// EachJ invokes op(j) sequentially for every stored endpoint of i, in
// ascending order (the order edges were appended during the last rebuild).
func (d *DirectedLinkedList) EachJ(i int, op func(j int)) {
	if i < 0 || i >= len(d.edges) {
		panic(fmt.Sprintf("neighbors: EachJ index %d out of range [0, %d)", i, len(d.edges)))
	}
	for _, j := range d.edges[i] {
		op(j)
	}
}

// PrintStatistics logs the accumulated CountDown statistics through the
// attached logger.
func (d *DirectedLinkedList) PrintStatistics() {
	s := d.countdown.Statistics
	d.logger.Info().
		Uint64("steps", s.Steps).
		Uint64("update_checks", s.UpdateChecks).
		Uint64("updates", s.Updates).
		Uint64("sanity_checks", s.SanityChecks).
		Msg(s.Report())
}

// Clone returns an independent copy: its countdown, cutoffs, edges and
// snapshot are all deep-copied so mutating one never affects the other.
func (d *DirectedLinkedList) Clone() Backend {
	clone := &DirectedLinkedList{
		countdown:   d.countdown.Clone(),
		cutoffs:     d.cutoffs,
		initialized: d.initialized,
		logger:      d.logger,
		snapshot:    vec3.CopySlice(d.snapshot),
	}
	if d.edges != nil {
		clone.edges = make([][]int, len(d.edges))
		for i, ni := range d.edges {
			clone.edges[i] = append([]int(nil), ni...)
		}
	}
	return clone
}
