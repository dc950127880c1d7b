package nurbs

import (
	"math"
	"testing"
)

func TestTransformBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4, 5)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2, 2)), Pt(6, 8, 10), epsilon)
	assertNear(t, p.Transform(Rotate(ZAxis, 0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(ZAxis, math.Pi/2)), Pt(-4, 3, 5), epsilon)
	assertNear(t, p.Transform(Rotate(XAxis, math.Pi/2)), Pt(3, -5, 4), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6, 7))), Pt(8, 10, 12), epsilon)
	assertNear(t, Pt(2, 0, 0).Transform(RotateAbout(ZAxis, math.Pi, Pt(1, 0, 0))), Pt(0, 0, 0), epsilon)
}

func TestTransformMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := NewTransform([12]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	a2 := Rotate(Vec(1, 1, 0), 0.3).ThenTranslate(Vec(1, -2, 3)).ThenScale(2, 1, 0.5)

	for _, p := range []Point{Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 1), Pt(1, 2, 3)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestTransformInvert(t *testing.T) {
	const epsilon = 1e-9
	a := NewTransform([12]float64{0.1, 1.2, 2.3, 3.4, 4.5, 5.6, -1, 0.5, 3, 7, 8, 9})
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 1), Pt(1, 1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
}

func TestTransformSimilarity(t *testing.T) {
	tests := []struct {
		t     Transform
		scale float64
		ok    bool
	}{
		{Identity, 1, true},
		{Rotate(Vec(1, 2, 3), 1).ThenTranslate(Vec(1, 1, 1)), 1, true},
		{Scale(2, 2, 2).Mul(Rotate(YAxis, 0.5)), 2, true},
		{Scale(-1, 1, 1), 1, true},
		{Scale(1, 2, 1), 0, false},
	}
	for i, tt := range tests {
		s, ok := tt.t.Similarity()
		if ok != tt.ok {
			t.Errorf("%d: got ok = %t, want %t", i, ok, tt.ok)
			continue
		}
		if ok && math.Abs(s-tt.scale) > 1e-9 {
			t.Errorf("%d: got scale %g, want %g", i, s, tt.scale)
		}
	}
}

func TestTransformDeterminant(t *testing.T) {
	if d := Scale(2, 3, 4).Determinant(); d != 24 {
		t.Errorf("got determinant %g, want 24", d)
	}
	if d := Rotate(ZAxis, 1).Determinant(); math.Abs(d-1) > 1e-12 {
		t.Errorf("got determinant %g, want 1", d)
	}
}
