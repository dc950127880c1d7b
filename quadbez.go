package nurbs

// QuadBez is a quadratic Bézier segment. It is a [Segment].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ Segment = QuadBez{}
var _ Arclener = QuadBez{}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Arclen returns the arclength of the quadratic Bézier segment.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d := q.Differentiate()
	return arclen(func(t float64) float64 { return Vec3(d.Eval(t)).Length() }, 0, 1, accuracy)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the hodograph, whose points are derivative vectors.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) StartPoint() Point { return q.P0 }
func (q QuadBez) EndPoint() Point   { return q.P2 }
func (q QuadBez) IsClosed() bool    { return q.P0.Coincides(q.P2) }

func (q QuadBez) Transform(t Transform) QuadBez {
	return QuadBez{
		q.P0.Transform(t),
		q.P1.Transform(t),
		q.P2.Transform(t),
	}
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// ToNurbs returns the segment as a degree 2 curve with knots [0, 0, 0, 1, 1, 1].
func (q QuadBez) ToNurbs() *NurbsCurve {
	return newNurbsCurve(2,
		KnotVector{0, 0, 0, 1, 1, 1},
		[]Point4{Homogenize(q.P0, 1), Homogenize(q.P1, 1), Homogenize(q.P2, 1)})
}
