package neighbors

import (
	"sync"
	"testing"

	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/vec3"
)

func TestAllPairsEnumeratesEveryPair(t *testing.T) {
	positions := []vec3.Vector3D{vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(2, 0, 0)}
	box := cell.Cubic(100)

	ap := NewAllPairs()
	ap.UpdateNeighbors(box, positions)

	got := map[[2]int]bool{}
	var mu sync.Mutex
	ap.EachI(func(i int) {
		ap.EachJ(i, func(j int) {
			mu.Lock()
			got[[2]int{i, j}] = true
			mu.Unlock()
		})
	})

	want := map[[2]int]bool{{1, 0}: true, {2, 0}: true, {2, 1}: true}
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d: %v", len(got), len(want), got)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("missing pair %v", k)
		}
	}
}

func TestAllPairsEachIBeforeInitPanics(t *testing.T) {
	ap := NewAllPairs()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic calling EachI before initialization")
		}
	}()
	ap.EachI(func(int) {})
}

func TestAllPairsEachJEmptyRangeForZero(t *testing.T) {
	ap := NewAllPairs()
	ap.UpdateNeighbors(cell.Cubic(10), make([]vec3.Vector3D, 3))

	calls := 0
	ap.EachJ(0, func(int) { calls++ })
	if calls != 0 {
		t.Errorf("EachJ(0, ...) called op %d times, want 0", calls)
	}
}

func TestAllPairsClone(t *testing.T) {
	ap := NewAllPairs()
	ap.UpdateNeighbors(cell.Cubic(10), make([]vec3.Vector3D, 4))

	clone := ap.Clone().(*AllPairs)
	clone.UpdateNeighbors(cell.Cubic(10), make([]vec3.Vector3D, 9))

	if ap.natoms == clone.natoms {
		t.Errorf("clone shares state with original: both report natoms=%d", ap.natoms)
	}
}
