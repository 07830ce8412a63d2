package vec3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddSub(t *testing.T) {
	a := New(1, 2, 3)
	b := New(0.5, -1, 4)

	if diff := cmp.Diff(a.Add(b), New(1.5, 1, 7)); diff != "" {
		t.Errorf("Add (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Sub(b), New(0.5, 3, -1)); diff != "" {
		t.Errorf("Sub (-got +want):\n%s", diff)
	}
}

func TestDotAndNorm(t *testing.T) {
	v := New(3, 4, 0)
	if got, want := v.Dot(v), 25.0; got != want {
		t.Errorf("Dot(v,v) = %v, want %v", got, want)
	}
	if got, want := v.Norm(), 5.0; got != want {
		t.Errorf("Norm() = %v, want %v", got, want)
	}
	if got, want := v.Norm2(), 25.0; got != want {
		t.Errorf("Norm2() = %v, want %v", got, want)
	}
}

func TestNormalized(t *testing.T) {
	v := New(0, 3, 4)
	n := v.Normalized()
	if got, want := n.Norm(), 1.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Normalized().Norm() = %v, want %v", got, want)
	}

	if diff := cmp.Diff(Zero.Normalized(), Zero); diff != "" {
		t.Errorf("Normalized() on zero vector (-got +want):\n%s", diff)
	}
}

func TestDistance2(t *testing.T) {
	a := New(0, 0, 0)
	b := New(1, 2, 2)
	if got, want := a.Distance2(b), 9.0; got != want {
		t.Errorf("Distance2() = %v, want %v", got, want)
	}
}

func TestCopySlice(t *testing.T) {
	src := []Vector3D{New(1, 1, 1), New(2, 2, 2)}
	dst := CopySlice(src)
	dst[0] = New(9, 9, 9)

	if diff := cmp.Diff(src[0], New(1, 1, 1)); diff != "" {
		t.Errorf("mutating the copy affected the source (-got +want):\n%s", diff)
	}
}
