package nurbs

import (
	"fmt"
	"slices"
)

// Nurbs describes the raw data of a NURBS curve.
//
// All methods return copies that the caller may modify.
type Nurbs interface {
	// Degree returns the polynomial degree of the curve.
	Degree() int
	// Knots returns the knot vector of the curve.
	Knots() KnotVector
	// ControlPoints returns the weighted control points of the curve.
	ControlPoints() []Point4
	// ControlPointLocations returns the cartesian locations of the control points.
	ControlPointLocations() []Point
	// Weights returns the weights of the control points.
	Weights() []float64
}

// Segment describes a curve that can be joined into a [PolyCurve].
type Segment interface {
	StartPoint() Point
	EndPoint() Point
	// IsClosed reports whether the end point coincides with the start point.
	IsClosed() bool
	// ToNurbs returns the curve as a NURBS curve.
	ToNurbs() *NurbsCurve
}

// NurbsCurve is a non-uniform rational B-spline curve. It is immutable; all
// operations return new curves.
type NurbsCurve struct {
	degree        int
	knots         KnotVector
	controlPoints []Point4
}

var _ Nurbs = (*NurbsCurve)(nil)
var _ Segment = (*NurbsCurve)(nil)
var _ Arclener = (*NurbsCurve)(nil)

// NewNurbsCurve returns a curve of the given degree with the given knots,
// control point locations and weights. A nil weights slice creates a
// non-rational curve with all weights equal to 1.
func NewNurbsCurve(degree int, knots KnotVector, points []Point, weights []float64) (*NurbsCurve, error) {
	cps, err := HomogenizePoints(points, weights)
	if err != nil {
		return nil, err
	}
	return NewNurbsCurveFromHomogeneous(degree, knots, cps)
}

// NewNurbsCurveFromHomogeneous returns a curve of the given degree with the
// given knots and weighted control points.
func NewNurbsCurveFromHomogeneous(degree int, knots KnotVector, controlPoints []Point4) (*NurbsCurve, error) {
	if degree <= 0 {
		return nil, fmt.Errorf("%w: degree %d must be positive", ErrInvalidArgument, degree)
	}
	if len(controlPoints) < degree+1 {
		return nil, fmt.Errorf("%w: a curve of degree %d needs at least %d control points, got %d",
			ErrInvalidArgument, degree, degree+1, len(controlPoints))
	}
	if !knots.AreValid(degree, len(controlPoints)) {
		return nil, fmt.Errorf("%w: knots %v do not fit degree %d with %d control points",
			ErrInvalidArgument, knots, degree, len(controlPoints))
	}
	for i, p := range controlPoints {
		if p.W <= 0 {
			return nil, fmt.Errorf("%w: weight %g of control point %d is not positive", ErrInvalidArgument, p.W, i)
		}
	}
	return newNurbsCurve(degree, knots.Clone(), slices.Clone(controlPoints)), nil
}

// NewNurbsCurveFromPoints returns a non-rational curve of the given degree
// with a clamped, evenly spaced knot vector.
func NewNurbsCurveFromPoints(degree int, points []Point) (*NurbsCurve, error) {
	knots, err := NewKnotVector(degree, len(points), true)
	if err != nil {
		return nil, err
	}
	return NewNurbsCurve(degree, knots, points, nil)
}

// newNurbsCurve takes ownership of knots and controlPoints without validating
// them.
func newNurbsCurve(degree int, knots KnotVector, controlPoints []Point4) *NurbsCurve {
	return &NurbsCurve{
		degree:        degree,
		knots:         knots,
		controlPoints: controlPoints,
	}
}

func (c *NurbsCurve) Degree() int { return c.degree }

func (c *NurbsCurve) Knots() KnotVector { return c.knots.Clone() }

func (c *NurbsCurve) ControlPoints() []Point4 { return slices.Clone(c.controlPoints) }

func (c *NurbsCurve) ControlPointLocations() []Point {
	return DehomogenizePoints(c.controlPoints)
}

func (c *NurbsCurve) Weights() []float64 { return PointWeights(c.controlPoints) }

// ControlPointCount returns the number of control points.
func (c *NurbsCurve) ControlPointCount() int { return len(c.controlPoints) }

// Domain returns the parameter interval over which the curve is defined.
func (c *NurbsCurve) Domain() (start, end float64) {
	return c.knots[c.degree], c.knots[len(c.knots)-c.degree-1]
}

// IsRational reports whether the weights of the curve differ.
func (c *NurbsCurve) IsRational() bool {
	for _, p := range c.controlPoints[1:] {
		if p.W != c.controlPoints[0].W {
			return true
		}
	}
	return false
}

// basisFunctions computes the non-vanishing basis functions of span at u.
func (c *NurbsCurve) basisFunctions(span int, u float64) []float64 {
	p := c.degree
	n := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	n[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - c.knots[span+1-j]
		right[j] = c.knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := n[r] / (right[r+1] + left[j-r])
			n[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		n[j] = saved
	}
	return n
}

// PointAt evaluates the curve at parameter u. Values outside of the domain
// are clamped to it.
func (c *NurbsCurve) PointAt(u float64) Point {
	start, end := c.Domain()
	return c.homogeneousAt(min(max(u, start), end)).Dehomogenize()
}

func (c *NurbsCurve) homogeneousAt(u float64) Point4 {
	span := c.knots.Span(c.degree, u)
	basis := c.basisFunctions(span, u)
	var sum Point4
	for i, b := range basis {
		sum = sum.Add(c.controlPoints[span-c.degree+i].Mul(b))
	}
	return sum
}

// hodograph returns the derivative of the curve in homogeneous space, which
// is a B-spline of one degree less. It is nil for curves of degree 1, whose
// derivative is constant per span and evaluated directly by
// [NurbsCurve.Derivative].
func (c *NurbsCurve) hodograph() (KnotVector, []Point4) {
	p := c.degree
	u := c.knots
	pts := make([]Point4, len(c.controlPoints)-1)
	for i := range pts {
		den := u[i+p+1] - u[i+1]
		if den == 0 {
			continue
		}
		pts[i] = c.controlPoints[i+1].Add(c.controlPoints[i].Mul(-1)).Mul(float64(p) / den)
	}
	return u[1 : len(u)-1], pts
}

// Derivative returns the first derivative of the curve at u, which is clamped
// to the domain.
func (c *NurbsCurve) Derivative(u float64) Vec3 {
	start, end := c.Domain()
	u = min(max(u, start), end)

	knots, pts := c.hodograph()
	var d Point4
	if c.degree == 1 {
		span := knots.Span(0, u)
		d = pts[span]
	} else {
		d = newNurbsCurve(c.degree-1, knots, pts).homogeneousAt(u)
	}
	// C = A/w, so C' = (A' - w'C)/w.
	a := c.homogeneousAt(u)
	pt := a.Dehomogenize()
	return Vec(d.X, d.Y, d.Z).Sub(Vec3(pt).Mul(d.W)).Div(a.W)
}

// Arclen returns the arc length of the curve, computed to within accuracy.
func (c *NurbsCurve) Arclen(accuracy float64) float64 {
	start, end := c.Domain()
	return c.arclenBetween(start, end, accuracy)
}

// arclenBetween integrates knot span by knot span, as the derivative need not
// be smooth at knots.
func (c *NurbsCurve) arclenBetween(u0, u1, accuracy float64) float64 {
	speed := func(u float64) float64 { return c.Derivative(u).Length() }
	var breaks []float64
	breaks = append(breaks, u0)
	for _, m := range c.knots.Multiplicities() {
		if m.Knot > u0 && m.Knot < u1 {
			breaks = append(breaks, m.Knot)
		}
	}
	breaks = append(breaks, u1)
	var sum float64
	for i := 1; i < len(breaks); i++ {
		sum += arclen(speed, breaks[i-1], breaks[i], accuracy/float64(len(breaks)-1))
	}
	return sum
}

// ParameterAtLength returns the parameter at which the arc length measured
// from the start of the domain equals length, within accuracy. Lengths
// outside of [0, c.Arclen(accuracy)] map to the ends of the domain.
func (c *NurbsCurve) ParameterAtLength(length, accuracy float64) float64 {
	start, end := c.Domain()
	total := c.Arclen(accuracy)
	if length <= 0 {
		return start
	}
	if length >= total {
		return end
	}
	f := func(u float64) float64 { return c.arclenBetween(start, u, accuracy/2) - length }
	return solveMonotone(f, func(u float64) float64 { return c.Derivative(u).Length() }, start, end, accuracy)
}

// StartPoint returns the point at the start of the domain.
func (c *NurbsCurve) StartPoint() Point {
	if c.knots.IsClamped(c.degree) {
		return c.controlPoints[0].Dehomogenize()
	}
	start, _ := c.Domain()
	return c.PointAt(start)
}

// EndPoint returns the point at the end of the domain.
func (c *NurbsCurve) EndPoint() Point {
	if c.knots.IsClamped(c.degree) {
		return c.controlPoints[len(c.controlPoints)-1].Dehomogenize()
	}
	_, end := c.Domain()
	return c.PointAt(end)
}

func (c *NurbsCurve) IsClosed() bool {
	return c.StartPoint().Coincides(c.EndPoint())
}

// ToNurbs returns c. Curves are immutable, so no copy is needed.
func (c *NurbsCurve) ToNurbs() *NurbsCurve { return c }

// Transform returns the curve with t applied to its control points.
func (c *NurbsCurve) Transform(t Transform) *NurbsCurve {
	cps := make([]Point4, len(c.controlPoints))
	for i, p := range c.controlPoints {
		cps[i] = p.Transform(t)
	}
	return newNurbsCurve(c.degree, c.knots.Clone(), cps)
}

// Reverse returns the curve traversed in the opposite direction over the same
// domain.
func (c *NurbsCurve) Reverse() *NurbsCurve {
	cps := slices.Clone(c.controlPoints)
	slices.Reverse(cps)
	return newNurbsCurve(c.degree, c.knots.Reversed(), cps)
}

// BoundingBox returns the bounding box of the control polygon. By the convex
// hull property it contains the curve.
func (c *NurbsCurve) BoundingBox() Box {
	return NewBoxFromPoints(c.ControlPointLocations()...)
}

func (c *NurbsCurve) String() string {
	return fmt.Sprintf("NurbsCurve{degree: %d, knots: %v, control points: %v}", c.degree, c.knots, c.controlPoints)
}
