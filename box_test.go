package nurbs

import (
	"testing"
)

func TestBox(t *testing.T) {
	b := NewBoxFromPoints(Pt(1, 2, 3), Pt(-1, 5, 0), Pt(0, 0, 1))
	diff(t, Box{-1, 0, 0, 1, 5, 3}, b)
	diff(t, Vec(2, 5, 3), b.Size())
	diff(t, Pt(0, 2.5, 1.5), b.Center())
	if !b.Contains(Pt(0, 1, 1)) {
		t.Error("box doesn't contain interior point")
	}
	if b.Contains(Pt(2, 1, 1)) {
		t.Error("box contains exterior point")
	}

	empty := NewBoxFromPoints()
	if !empty.IsEmpty() {
		t.Error("box without points isn't empty")
	}
	diff(t, b, empty.Union(b))
}
