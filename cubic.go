package nurbs

// CubicBez is a cubic Bézier segment. It is a [Segment].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Segment = CubicBez{}
var _ Arclener = CubicBez{}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (c CubicBez) Arclen(accuracy float64) float64 {
	d := c.Differentiate()
	return arclen(func(t float64) float64 { return Vec3(d.Eval(t)).Length() }, 0, 1, accuracy)
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec3(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec3(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the hodograph, whose points are derivative vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) StartPoint() Point { return c.P0 }
func (c CubicBez) EndPoint() Point   { return c.P3 }
func (c CubicBez) IsClosed() bool    { return c.P0.Coincides(c.P3) }

func (c CubicBez) Transform(t Transform) CubicBez {
	return CubicBez{
		c.P0.Transform(t),
		c.P1.Transform(t),
		c.P2.Transform(t),
		c.P3.Transform(t),
	}
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// ToNurbs returns the segment as a degree 3 curve with knots
// [0, 0, 0, 0, 1, 1, 1, 1].
func (c CubicBez) ToNurbs() *NurbsCurve {
	return newNurbsCurve(3,
		KnotVector{0, 0, 0, 0, 1, 1, 1, 1},
		[]Point4{Homogenize(c.P0, 1), Homogenize(c.P1, 1), Homogenize(c.P2, 1), Homogenize(c.P3, 1)})
}
