package nurbs

import (
	"fmt"
	"math"
)

// Arc is a circular arc in 3D. It lies in the plane spanned by XAxis and
// YAxis through Center, and runs counter-clockwise (from XAxis towards YAxis)
// from StartAngle over SweepAngle radians.
//
// Use [NewArc] or [ArcFromPoints] to create arcs with orthonormal axes.
type Arc struct {
	Center     Point
	XAxis      Vec3
	YAxis      Vec3
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Segment = Arc{}
var _ Arclener = Arc{}

// NewArc returns an arc after validating its parameters. xaxis and yaxis are
// normalized and have to be perpendicular. The sweep has to be in (0, 2π].
func NewArc(center Point, xaxis, yaxis Vec3, radius, startAngle, sweepAngle float64) (Arc, error) {
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return Arc{}, fmt.Errorf("%w: radius %g must be positive", ErrInvalidArgument, radius)
	}
	if xaxis.IsZero() || yaxis.IsZero() {
		return Arc{}, fmt.Errorf("%w: arc axes must not be zero", ErrInvalidArgument)
	}
	x, y := xaxis.Normalize(), yaxis.Normalize()
	if math.Abs(x.Dot(y)) > 1e-9 {
		return Arc{}, fmt.Errorf("%w: arc axes %s and %s are not perpendicular", ErrInvalidArgument, xaxis, yaxis)
	}
	if sweepAngle <= 0 || sweepAngle > 2*math.Pi+Epsilon {
		return Arc{}, fmt.Errorf("%w: sweep angle %g is not in (0, 2π]", ErrInvalidArgument, sweepAngle)
	}
	return Arc{
		Center:     center,
		XAxis:      x,
		YAxis:      y,
		Radius:     radius,
		StartAngle: startAngle,
		SweepAngle: min(sweepAngle, 2*math.Pi),
	}, nil
}

// ArcFromPoints returns the arc that starts at p0, passes through p1 and ends
// at p2. The points must not be collinear.
func ArcFromPoints(p0, p1, p2 Point) (Arc, error) {
	// Circumcenter of the triangle, relative to p2.
	a := p0.Sub(p2)
	b := p1.Sub(p2)
	axb := a.Cross(b)
	if axb.Length2() <= Epsilon*Epsilon {
		return Arc{}, fmt.Errorf("%w: points %s, %s and %s are collinear", ErrInvalidArgument, p0, p1, p2)
	}
	num := b.Mul(a.Length2()).Sub(a.Mul(b.Length2())).Cross(axb)
	center := p2.Translate(num.Div(2 * axb.Length2()))

	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	xaxis := p0.Sub(center)
	radius := xaxis.Length()
	xaxis = xaxis.Normalize()
	yaxis := normal.Cross(xaxis)

	arc := Arc{
		Center: center,
		XAxis:  xaxis,
		YAxis:  yaxis,
		Radius: radius,
	}
	arc.SweepAngle = arc.angleOf(p2)
	return arc, nil
}

// angleOf returns the angle of pt in [0, 2π), measured in the plane of the
// arc from XAxis.
func (a Arc) angleOf(pt Point) float64 {
	d := pt.Sub(a.Center)
	th := math.Atan2(d.Dot(a.YAxis), d.Dot(a.XAxis))
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// Normal returns the normal of the plane of the arc.
func (a Arc) Normal() Vec3 {
	return a.XAxis.Cross(a.YAxis)
}

// sample returns the point on the circle at angle th.
func (a Arc) sample(th float64) Point {
	sin, cos := math.Sincos(th)
	return a.Center.Translate(a.XAxis.Mul(a.Radius * cos).Add(a.YAxis.Mul(a.Radius * sin)))
}

// Eval returns the point at t ∈ [0, 1], where t is proportional to the angle.
func (a Arc) Eval(t float64) Point {
	return a.sample(a.StartAngle + t*a.SweepAngle)
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return a.Radius * a.SweepAngle
}

// Arclen implements [Arclener]. The length of an arc is exact.
func (a Arc) Arclen(accuracy float64) float64 {
	return a.Length()
}

func (a Arc) StartPoint() Point { return a.sample(a.StartAngle) }
func (a Arc) EndPoint() Point   { return a.sample(a.StartAngle + a.SweepAngle) }

// IsClosed reports whether the arc is a full circle.
func (a Arc) IsClosed() bool { return a.StartPoint().Coincides(a.EndPoint()) }

// Transform returns the arc mapped by t. It reports false if t is not a
// similarity transform, in which case the image of the arc is elliptical and
// only its NURBS form can be transformed.
func (a Arc) Transform(t Transform) (Arc, bool) {
	s, ok := t.Similarity()
	if !ok {
		return Arc{}, false
	}
	return Arc{
		Center:     a.Center.Transform(t),
		XAxis:      t.apply(a.XAxis).Div(s),
		YAxis:      t.apply(a.YAxis).Div(s),
		Radius:     a.Radius * s,
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
	}, true
}

// ToNurbs returns the exact rational quadratic form of the arc. The arc is
// split into up to four spans of equal sweep, each no larger than π/2.
func (a Arc) ToNurbs() *NurbsCurve {
	var spans int
	switch {
	case a.SweepAngle <= math.Pi/2:
		spans = 1
	case a.SweepAngle <= math.Pi:
		spans = 2
	case a.SweepAngle <= 3*math.Pi/2:
		spans = 3
	default:
		spans = 4
	}

	dth := a.SweepAngle / float64(spans)
	w1 := math.Cos(dth / 2)
	cps := make([]Point4, 2*spans+1)
	knots := make(KnotVector, 2*spans+4)

	cps[0] = Homogenize(a.StartPoint(), 1)
	for i := 0; i < spans; i++ {
		mid := a.StartAngle + (float64(i)+0.5)*dth
		sin, cos := math.Sincos(mid)
		// The middle control point is where the tangents at both ends of the
		// span intersect.
		mp := a.Center.Translate(a.XAxis.Mul(a.Radius * cos / w1).Add(a.YAxis.Mul(a.Radius * sin / w1)))
		cps[2*i+1] = Homogenize(mp, w1)
		if i == spans-1 {
			cps[2*i+2] = Homogenize(a.EndPoint(), 1)
		} else {
			cps[2*i+2] = Homogenize(a.sample(a.StartAngle+float64(i+1)*dth), 1)
		}
	}

	for i := 0; i < 3; i++ {
		knots[len(knots)-1-i] = 1
	}
	for i := 1; i < spans; i++ {
		k := float64(i) / float64(spans)
		knots[2*i+1] = k
		knots[2*i+2] = k
	}
	return newNurbsCurve(2, knots, cps)
}
