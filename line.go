package nurbs

import (
	"math"
)

// Line represents a line segment. It is a [Segment].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Segment = Line{}
var _ Arclener = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Length()
}

// Direction returns the unit vector pointing from P0 to P1.
func (l Line) Direction() Vec3 {
	return l.P1.Sub(l.P0).Normalize()
}

// Arclen implements [Arclener].
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec3) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(t Transform) Line {
	return Line{
		P0: l.P0.Transform(t),
		P1: l.P1.Transform(t),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// ClosestParameter returns the parameter of the point on the line closest to
// pt.
func (l Line) ClosestParameter(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	dSquared := d.Length2()
	if dSquared == 0 {
		return 0
	}
	return math.Max(0, math.Min(1, d.Dot(pt.Sub(l.P0))/dSquared))
}

func (l Line) StartPoint() Point { return l.P0 }
func (l Line) EndPoint() Point   { return l.P1 }

// IsClosed reports whether the line is degenerate. A line only ends where it
// starts if it has zero length.
func (l Line) IsClosed() bool { return l.P0.Coincides(l.P1) }

func (l Line) Reverse() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// ToNurbs returns the line as a degree 1 curve with knots [0, 0, 1, 1].
func (l Line) ToNurbs() *NurbsCurve {
	return newNurbsCurve(1,
		KnotVector{0, 0, 1, 1},
		[]Point4{Homogenize(l.P0, 1), Homogenize(l.P1, 1)})
}
