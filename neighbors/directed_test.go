package neighbors

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/vec3"
)

func latticePositions(n int, spacing float64) []vec3.Vector3D {
	out := make([]vec3.Vector3D, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out = append(out, vec3.New(float64(i)*spacing, float64(j)*spacing, float64(k)*spacing))
			}
		}
	}
	return out
}

func allCloseAboveTriangle(box *cell.UnitCell, positions []vec3.Vector3D, cutoff2 float64) map[[2]int]bool {
	want := map[[2]int]bool{}
	for i := range positions {
		for j := 0; j < i; j++ {
			if box.Distance2(positions[i], positions[j]) < cutoff2 {
				want[[2]int{i, j}] = true
			}
		}
	}
	return want
}

func collectEdges(d *DirectedLinkedList) map[[2]int]bool {
	got := map[[2]int]bool{}
	for i := 0; i < len(d.edges); i++ {
		d.EachJ(i, func(j int) { got[[2]int{i, j}] = true })
	}
	return got
}

// Invariant 1/2: completeness and triangular convention after a rebuild.
func TestUpdateNeighborsCompletenessAndTriangularConvention(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(5, 3.4)

	d, err := NewDirectedLinkedList(8.5, 1.0, 0, 2, 0)
	if err != nil {
		t.Fatalf("NewDirectedLinkedList: %v", err)
	}
	d.UpdateNeighbors(box, positions)

	want := allCloseAboveTriangle(box, positions, d.cutoffs.UpdateCutoff2())
	got := collectEdges(d)

	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("edges after rebuild do not match expected update-cutoff pairs (-got +want):\n%s", diff)
	}
	for i, ni := range d.edges {
		for _, j := range ni {
			if j >= i {
				t.Errorf("edges[%d] contains %d, violating j < i", i, j)
			}
		}
	}
}

// Invariant 4: idempotent rebuild.
func TestUpdateNeighborsIdempotent(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(4, 3.4)

	d, _ := NewDirectedLinkedList(8.5, 1.0, 0, 2, 0)
	d.UpdateNeighbors(box, positions)
	first := collectEdges(d)
	firstSnapshot := vec3.CopySlice(d.snapshot)

	d.UpdateNeighbors(box, positions)
	second := collectEdges(d)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("edges differ across idempotent rebuilds (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(firstSnapshot, d.snapshot); diff != "" {
		t.Errorf("snapshot differs across idempotent rebuilds (-first +second):\n%s", diff)
	}
}

// Invariant 3 / Scenario S3: with zero drift, no rebuild occurs and the list
// stays valid for the max cutoff across many EnsureUpdated calls.
func TestEnsureUpdatedNoDriftNeverRebuilds(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(5, 3.4)

	d, _ := NewDirectedLinkedList(8.5, 1.0, 0, 2, 0)
	d.UpdateNeighbors(box, positions)
	wantEdges := collectEdges(d)

	const steps = 2000
	for s := 0; s < steps; s++ {
		d.EnsureUpdated(box, positions)
	}

	if d.countdown.Statistics.Updates != 0 {
		t.Errorf("Updates = %d, want 0 (no particle drifted)", d.countdown.Statistics.Updates)
	}
	if diff := cmp.Diff(collectEdges(d), wantEdges); diff != "" {
		t.Errorf("edges changed despite zero drift (-got +want):\n%s", diff)
	}

	maxCutoff2 := d.cutoffs.MaxCutoff2()
	want := allCloseAboveTriangle(box, positions, maxCutoff2)
	got := map[[2]int]bool{}
	for pair := range wantEdges {
		if box.Distance2(positions[pair[0]], positions[pair[1]]) < maxCutoff2 {
			got[pair] = true
		}
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("stale list missing pairs within max cutoff (-got +want):\n%s", diff)
	}
}

// Scenario S5: teleporting one particle by 2*skin forces exactly one
// rebuild, and invariant 1 is restored afterward.
func TestEnsureUpdatedForcedRebuildOnTeleport(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(5, 3.4)

	d, _ := NewDirectedLinkedList(8.5, 1.0, 2, 1, 0)
	d.UpdateNeighbors(box, positions)

	positions[0] = positions[0].Add(vec3.New(2*1.0+0.01, 0, 0))

	for s := 0; s < 3; s++ {
		d.EnsureUpdated(box, positions)
	}

	if got, want := d.countdown.Statistics.Updates, uint64(1); got != want {
		t.Errorf("Updates = %d, want %d", got, want)
	}

	want := allCloseAboveTriangle(box, positions, d.cutoffs.UpdateCutoff2())
	got := collectEdges(d)
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("invariant 1 not restored after forced rebuild (-got +want):\n%s", diff)
	}
}

// Scenario S6: externally corrupting edges makes SanityCheck panic, naming
// the missing pair.
func TestSanityCheckPanicsOnCorruptedEdges(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(3, 3.4)

	d, _ := NewDirectedLinkedList(8.5, 1.0, 0, 1, 0)
	d.UpdateNeighbors(box, positions)

	// Find a close pair and remove it from edges to simulate corruption.
	var removedI, removedJ int
	found := false
	for i := 1; i < len(d.edges) && !found; i++ {
		if len(d.edges[i]) > 0 {
			removedI, removedJ = i, d.edges[i][0]
			d.edges[i] = d.edges[i][1:]
			found = true
		}
	}
	if !found {
		t.Fatalf("test setup: no close pair found to corrupt")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected SanityCheck to panic on corrupted edges")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value is not a string: %v", r)
		}
		wantSub := "i=" + strconv.Itoa(removedI) + ", j=" + strconv.Itoa(removedJ)
		if !strings.Contains(msg, wantSub) {
			t.Errorf("panic message %q does not name the removed pair %q", msg, wantSub)
		}
	}()

	d.SanityCheck(box, positions)
}

func TestEachIConcurrentVisitationCoversAllIndices(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(4, 3.4)

	d, _ := NewDirectedLinkedList(8.5, 1.0, 0, 1, 0)
	d.UpdateNeighbors(box, positions)

	var mu sync.Mutex
	seen := map[int]bool{}
	d.EachI(func(i int) {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
	})

	if len(seen) != len(positions) {
		t.Errorf("EachI visited %d indices, want %d", len(seen), len(positions))
	}
}

func TestEachJOutOfRangePanics(t *testing.T) {
	box := cell.Cubic(17.0)
	positions := latticePositions(3, 3.4)
	d, _ := NewDirectedLinkedList(8.5, 1.0, 0, 1, 0)
	d.UpdateNeighbors(box, positions)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range EachJ index")
		}
	}()
	d.EachJ(len(positions)+5, func(int) {})
}
