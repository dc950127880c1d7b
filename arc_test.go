package nurbs

import (
	"errors"
	"math"
	"testing"
)

func TestNewArcValidation(t *testing.T) {
	tests := []struct {
		name         string
		xaxis, yaxis Vec3
		radius       float64
		sweep        float64
	}{
		{"zero radius", XAxis, YAxis, 0, 1},
		{"zero axis", Vec3{}, YAxis, 1, 1},
		{"skewed axes", XAxis, Vec(1, 1, 0), 1, 1},
		{"zero sweep", XAxis, YAxis, 1, 0},
		{"large sweep", XAxis, YAxis, 1, 7},
	}
	for _, tt := range tests {
		if _, err := NewArc(Pt(0, 0, 0), tt.xaxis, tt.yaxis, tt.radius, 0, tt.sweep); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: got %v, want ErrInvalidArgument", tt.name, err)
		}
	}
}

func TestArcFromPoints(t *testing.T) {
	p0, p1, p2 := Pt(1, 0, 0), Pt(0, 1, 0), Pt(-1, 0, 0)
	a, err := ArcFromPoints(p0, p1, p2)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, a.Center, Pt(0, 0, 0), 1e-12)
	if math.Abs(a.Radius-1) > 1e-12 {
		t.Errorf("got radius %g, want 1", a.Radius)
	}
	if math.Abs(a.SweepAngle-math.Pi) > 1e-12 {
		t.Errorf("got sweep %g, want π", a.SweepAngle)
	}
	assertNear(t, a.StartPoint(), p0, 1e-12)
	assertNear(t, a.Eval(0.5), p1, 1e-12)
	assertNear(t, a.EndPoint(), p2, 1e-12)
	diff(t, ZAxis, a.Normal(), approx)

	// The same points in the opposite order sweep the other way around.
	b, err := ArcFromPoints(p2, p1, p0)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, b.Eval(0.5), p1, 1e-12)
	diff(t, ZAxis.Negate(), b.Normal(), approx)

	if _, err := ArcFromPoints(Pt(0, 0, 0), Pt(1, 1, 1), Pt(2, 2, 2)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("collinear points: got %v, want ErrInvalidArgument", err)
	}
}

func TestArcFromPointsInSpace(t *testing.T) {
	p0, p1, p2 := Pt(3, 1, 2), Pt(1, 4, 0), Pt(-2, 0, 5)
	a, err := ArcFromPoints(p0, p1, p2)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{p0, p1, p2} {
		if d := p.Distance(a.Center); math.Abs(d-a.Radius) > 1e-9 {
			t.Errorf("%s is %g away from the center, want %g", p, d, a.Radius)
		}
	}
	assertNear(t, a.StartPoint(), p0, 1e-9)
	assertNear(t, a.EndPoint(), p2, 1e-9)
}

func TestArcToNurbs(t *testing.T) {
	for _, sweep := range []float64{0.3, math.Pi / 2, 2, math.Pi, 4, 1.5 * math.Pi, 5, 2 * math.Pi} {
		a, err := NewArc(Pt(1, 2, 3), Vec(0, 1, 0), Vec(0, 0, 1), 2.5, 0.4, sweep)
		if err != nil {
			t.Fatal(err)
		}
		c := a.ToNurbs()
		if c.Degree() != 2 {
			t.Fatalf("got degree %d, want 2", c.Degree())
		}
		if !c.Knots().AreValid(2, c.ControlPointCount()) {
			t.Fatalf("sweep %g: invalid knots %v", sweep, c.Knots())
		}
		diff(t, a.StartPoint(), c.StartPoint())
		diff(t, a.EndPoint(), c.EndPoint())
		for i := 0; i <= 40; i++ {
			p := c.PointAt(float64(i) / 40)
			if d := p.Distance(a.Center); math.Abs(d-a.Radius) > 1e-9 {
				t.Errorf("sweep %g: point %s is %g away from the center, want %g", sweep, p, d, a.Radius)
			}
			if d := p.Sub(a.Center).Dot(a.Normal()); math.Abs(d) > 1e-9 {
				t.Errorf("sweep %g: point %s is off the plane by %g", sweep, p, d)
			}
		}
		if got, want := c.IsClosed(), sweep == 2*math.Pi; got != want {
			t.Errorf("sweep %g: IsClosed() = %t, want %t", sweep, got, want)
		}
	}
}

func TestArcQuarterKnots(t *testing.T) {
	a, err := NewArc(Pt(0, 0, 0), XAxis, YAxis, 1, 0, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	c := a.ToNurbs()
	diff(t, KnotVector{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1}, c.Knots())
	w := math.Sqrt2 / 2
	diff(t, []float64{1, w, 1, w, 1, w, 1, w, 1}, c.Weights(), approx)
	assertNear(t, c.PointAt(0.125), Pt(w, w, 0), 1e-12)
}

func TestArcTransform(t *testing.T) {
	a, err := NewArc(Pt(0, 0, 0), XAxis, YAxis, 1, 0, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	tr := Rotate(XAxis, math.Pi/2).ThenScale(2, 2, 2).ThenTranslate(Vec(1, 0, 0))
	b, ok := a.Transform(tr)
	if !ok {
		t.Fatal("similarity transform was rejected")
	}
	if math.Abs(b.Radius-2) > 1e-12 {
		t.Errorf("got radius %g, want 2", b.Radius)
	}
	for i := 0; i <= 10; i++ {
		u := float64(i) / 10
		assertNear(t, b.Eval(u), a.Eval(u).Transform(tr), 1e-9)
	}

	if _, ok := a.Transform(Scale(1, 2, 1)); ok {
		t.Error("non-uniform scale was accepted")
	}
}
