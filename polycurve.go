package nurbs

import (
	"fmt"
	"slices"
)

// PolyCurve is a curve that joins several, possibly different, kinds of
// segments end to end. It maintains a single NURBS form of all its segments
// and implements [Nurbs] and [Segment] through it.
//
// The zero value is an empty polycurve ready to use. A PolyCurve must not be
// modified concurrently.
type PolyCurve struct {
	segments      []Segment
	segmentsNurbs []*NurbsCurve
	// form is the unified curve. It is replaced as a whole after every
	// successful append and nil while there are no segments.
	form *NurbsCurve
}

var _ Nurbs = (*PolyCurve)(nil)
var _ Segment = (*PolyCurve)(nil)
var _ Arclener = (*PolyCurve)(nil)

// NewPolyCurve returns an empty polycurve.
func NewPolyCurve() *PolyCurve {
	return &PolyCurve{}
}

// AppendLine appends a line to the end of the polycurve. It fails if the
// polycurve is closed or if the line doesn't start where the polycurve ends.
func (pc *PolyCurve) AppendLine(l Line) error {
	return pc.append(l)
}

// AppendArc appends an arc to the end of the polycurve. It fails if the
// polycurve is closed or if the arc doesn't start where the polycurve ends.
func (pc *PolyCurve) AppendArc(a Arc) error {
	return pc.append(a)
}

// AppendCurve appends a NURBS curve to the end of the polycurve. In addition
// to the conditions of [PolyCurve.AppendLine], it fails if the polycurve
// isn't empty and c is closed, or if c doesn't have clamped knots.
func (pc *PolyCurve) AppendCurve(c *NurbsCurve) error {
	return pc.append(c)
}

// AppendPolyCurve appends a copy of o to the end of the polycurve. The same
// conditions as for [PolyCurve.AppendCurve] apply; o must not be empty.
func (pc *PolyCurve) AppendPolyCurve(o *PolyCurve) error {
	return pc.append(o.clone())
}

// Append appends seg, dispatching on its type to [PolyCurve.AppendLine],
// [PolyCurve.AppendArc], [PolyCurve.AppendCurve] or
// [PolyCurve.AppendPolyCurve]. Other segment types, such as [QuadBez] and
// [CubicBez], are subject to the same rules as NURBS curves.
func (pc *PolyCurve) Append(seg Segment) error {
	switch seg := seg.(type) {
	case Line:
		return pc.AppendLine(seg)
	case Arc:
		return pc.AppendArc(seg)
	case *NurbsCurve:
		return pc.AppendCurve(seg)
	case *PolyCurve:
		return pc.AppendPolyCurve(seg)
	default:
		return pc.append(seg)
	}
}

// CheckAppend reports the error that appending seg would return, without
// appending it.
func (pc *PolyCurve) CheckAppend(seg Segment) error {
	if _, err := segmentNurbs(seg); err != nil {
		return err
	}
	if err := pc.healthChecks(seg); err != nil {
		return err
	}
	// A closed first segment closes the polycurve. Only segments following
	// others have to be open.
	switch seg.(type) {
	case Line, Arc:
	default:
		if len(pc.segments) > 0 && seg.IsClosed() {
			return fmt.Errorf("%w: cannot append the closed %T", ErrInvalidOperation, seg)
		}
	}
	return nil
}

func (pc *PolyCurve) append(seg Segment) error {
	if err := pc.CheckAppend(seg); err != nil {
		tracer().Errorf("rejected segment %d: %v", len(pc.segments), err)
		return err
	}
	return pc.AppendTrusted(seg)
}

// AppendTrusted appends segments without checking that they are connected or
// that the polycurve is open. The caller is responsible for passing segments
// that form a continuous chain starting at the current end point.
//
// The only errors reported are those of converting the segments to a common
// degree; in that case the polycurve is left unchanged.
func (pc *PolyCurve) AppendTrusted(segments ...Segment) error {
	if len(segments) == 0 {
		return nil
	}
	segs := slices.Clone(pc.segments)
	curves := slices.Clone(pc.segmentsNurbs)
	for _, seg := range segments {
		nc, err := segmentNurbs(seg)
		if err != nil {
			return err
		}
		segs = append(segs, seg)
		curves = append(curves, nc)
	}
	form, err := joinCurves(curves)
	if err != nil {
		return err
	}
	pc.segments, pc.segmentsNurbs, pc.form = segs, curves, form
	return nil
}

// segmentNurbs converts seg to the NURBS form used for joining.
func segmentNurbs(seg Segment) (*NurbsCurve, error) {
	nc := seg.ToNurbs()
	if nc == nil {
		return nil, fmt.Errorf("%w: %T has no NURBS form", ErrInvalidOperation, seg)
	}
	if !nc.knots.IsClamped(nc.degree) {
		return nil, fmt.Errorf("%w: cannot join %T with unclamped knots %v", ErrInvalidOperation, seg, nc.knots)
	}
	return nc, nil
}

// healthChecks reports whether seg can follow the current end of the
// polycurve.
func (pc *PolyCurve) healthChecks(seg Segment) error {
	if len(pc.segments) == 0 {
		return nil
	}
	if pc.IsClosed() {
		return fmt.Errorf("%w: the polycurve is closed, cannot append %T", ErrInvalidOperation, seg)
	}
	end, start := pc.EndPoint(), seg.StartPoint()
	if d := end.Distance(start); d > Epsilon {
		return fmt.Errorf("%w: %T starts at %s, which is %g away from the end of the polycurve at %s",
			ErrInvalidOperation, seg, start, d, end)
	}
	return nil
}

// joinCurves builds the unified curve of curves, which must all have clamped
// knots. The result shares no memory with its inputs.
func joinCurves(curves []*NurbsCurve) (*NurbsCurve, error) {
	if len(curves) == 1 {
		c := curves[0]
		return newNurbsCurve(c.degree, c.knots.Clone(), slices.Clone(c.controlPoints)), nil
	}

	degree := 0
	for _, c := range curves {
		degree = max(degree, c.degree)
	}

	homogenized := make([]*NurbsCurve, len(curves))
	for i, c := range curves {
		e, err := ElevateDegree(c, degree)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		homogenized[i] = e
	}

	first := homogenized[0]
	knots := first.knots[:len(first.knots)-1].Clone()
	cps := slices.Clone(first.controlPoints)
	for _, c := range homogenized[1:] {
		// The clamped start of each curve is subsumed by the joint; the knots
		// that remain continue where the joined knots end.
		last := knots[len(knots)-1]
		interior := c.knots[degree+1 : len(c.knots)-1]
		knots = append(knots, interior.shifted(last-c.knots[0])...)
		// The first control point coincides with the previous curve's last.
		cps = append(cps, c.controlPoints[1:]...)
	}
	knots = append(knots, knots[len(knots)-1])

	tracer().Debugf("joined %d segments: degree %d, %d knots, %d control points",
		len(curves), degree, len(knots), len(cps))
	return newNurbsCurve(degree, knots.Normalize(), cps), nil
}

// Segments returns the appended segments in order, as they were appended.
func (pc *PolyCurve) Segments() []Segment {
	return slices.Clone(pc.segments)
}

// SegmentCount returns the number of appended segments.
func (pc *PolyCurve) SegmentCount() int {
	return len(pc.segments)
}

func (pc *PolyCurve) clone() *PolyCurve {
	return &PolyCurve{
		segments:      slices.Clone(pc.segments),
		segmentsNurbs: slices.Clone(pc.segmentsNurbs),
		form:          pc.form,
	}
}

// Degree returns the degree of the unified curve, or 0 if the polycurve is
// empty.
func (pc *PolyCurve) Degree() int {
	if pc.form == nil {
		return 0
	}
	return pc.form.Degree()
}

func (pc *PolyCurve) Knots() KnotVector {
	if pc.form == nil {
		return nil
	}
	return pc.form.Knots()
}

func (pc *PolyCurve) ControlPoints() []Point4 {
	if pc.form == nil {
		return nil
	}
	return pc.form.ControlPoints()
}

func (pc *PolyCurve) ControlPointLocations() []Point {
	if pc.form == nil {
		return nil
	}
	return pc.form.ControlPointLocations()
}

func (pc *PolyCurve) Weights() []float64 {
	if pc.form == nil {
		return nil
	}
	return pc.form.Weights()
}

// Domain returns the domain of the unified curve, which is [0, 1] unless the
// polycurve consists of a single segment with a different domain.
func (pc *PolyCurve) Domain() (start, end float64) {
	if pc.form == nil {
		return 0, 0
	}
	return pc.form.Domain()
}

// PointAt evaluates the unified curve at u.
func (pc *PolyCurve) PointAt(u float64) Point {
	if pc.form == nil {
		return Point{}
	}
	return pc.form.PointAt(u)
}

// Arclen returns the arc length of the unified curve.
func (pc *PolyCurve) Arclen(accuracy float64) float64 {
	if pc.form == nil {
		return 0
	}
	return pc.form.Arclen(accuracy)
}

// ParameterAtLength returns the parameter of the unified curve at which the
// arc length from its start equals length. See
// [NurbsCurve.ParameterAtLength].
func (pc *PolyCurve) ParameterAtLength(length, accuracy float64) float64 {
	if pc.form == nil {
		return 0
	}
	return pc.form.ParameterAtLength(length, accuracy)
}

func (pc *PolyCurve) StartPoint() Point {
	if pc.form == nil {
		return Point{}
	}
	return pc.form.StartPoint()
}

func (pc *PolyCurve) EndPoint() Point {
	if pc.form == nil {
		return Point{}
	}
	return pc.form.EndPoint()
}

// IsClosed reports whether the end point of the polycurve coincides with its
// start point. An empty polycurve is not closed.
func (pc *PolyCurve) IsClosed() bool {
	if pc.form == nil {
		return false
	}
	return pc.form.IsClosed()
}

// ToNurbs returns the unified curve, or nil if the polycurve is empty.
func (pc *PolyCurve) ToNurbs() *NurbsCurve {
	return pc.form
}

// BoundingBox returns the bounding box of the unified control polygon.
func (pc *PolyCurve) BoundingBox() Box {
	if pc.form == nil {
		return NewBoxFromPoints()
	}
	return pc.form.BoundingBox()
}

// Transform returns a new polycurve whose segments are those of pc mapped by
// t. Lines stay lines and arcs stay arcs under similarity transforms; other
// segments are transformed in NURBS form.
func (pc *PolyCurve) Transform(t Transform) *PolyCurve {
	segs := make([]Segment, len(pc.segments))
	for i, seg := range pc.segments {
		segs[i] = transformSegment(seg, t)
	}
	out := NewPolyCurve()
	// Affine maps preserve connectivity, and the segments had a NURBS form
	// before.
	if err := out.AppendTrusted(segs...); err != nil {
		panic(fmt.Sprintf("transformed segments don't join: %v", err))
	}
	return out
}

func transformSegment(seg Segment, t Transform) Segment {
	switch seg := seg.(type) {
	case Line:
		return seg.Transform(t)
	case Arc:
		if a, ok := seg.Transform(t); ok {
			return a
		}
		return seg.ToNurbs().Transform(t)
	case QuadBez:
		return seg.Transform(t)
	case CubicBez:
		return seg.Transform(t)
	case *NurbsCurve:
		return seg.Transform(t)
	case *PolyCurve:
		return seg.Transform(t)
	default:
		return seg.ToNurbs().Transform(t)
	}
}

// Reverse returns a new polycurve that traverses pc in the opposite direction.
func (pc *PolyCurve) Reverse() *PolyCurve {
	segs := make([]Segment, len(pc.segments))
	for i, seg := range pc.segments {
		segs[len(segs)-1-i] = reverseSegment(seg)
	}
	out := NewPolyCurve()
	if err := out.AppendTrusted(segs...); err != nil {
		panic(fmt.Sprintf("reversed segments don't join: %v", err))
	}
	return out
}

func reverseSegment(seg Segment) Segment {
	switch seg := seg.(type) {
	case Line:
		return seg.Reverse()
	case Arc:
		return Arc{
			Center:     seg.Center,
			XAxis:      seg.XAxis,
			YAxis:      seg.YAxis.Negate(),
			Radius:     seg.Radius,
			StartAngle: -(seg.StartAngle + seg.SweepAngle),
			SweepAngle: seg.SweepAngle,
		}
	case QuadBez:
		return seg.Reverse()
	case CubicBez:
		return seg.Reverse()
	case *NurbsCurve:
		return seg.Reverse()
	case *PolyCurve:
		return seg.Reverse()
	default:
		return seg.ToNurbs().Reverse()
	}
}

func (pc *PolyCurve) String() string {
	return fmt.Sprintf("PolyCurve{segments: %d, form: %v}", len(pc.segments), pc.form)
}
