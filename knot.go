package nurbs

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// KnotVector is a non-decreasing sequence of parameter values that partitions
// the domain of a B-spline.
//
// A knot vector doesn't know the degree or the number of control points of the
// curve it belongs to; methods that depend on them take them as arguments.
type KnotVector []float64

// KnotMultiplicity is a distinct knot value and the number of times it occurs.
type KnotMultiplicity struct {
	Knot float64
	Mult int
}

// NewKnotVector returns an evenly spaced knot vector for a curve of the given
// degree with controlPointCount control points. It has controlPointCount +
// degree + 1 knots.
//
// A clamped vector starts with degree+1 zeros and ends with degree+1 ones, so
// the curve interpolates its first and last control points. An unclamped
// vector spaces all knots evenly in [0, 1].
func NewKnotVector(degree, controlPointCount int, clamped bool) (KnotVector, error) {
	if degree <= 0 || controlPointCount <= 0 {
		return nil, fmt.Errorf("%w: degree %d and control point count %d must be positive",
			ErrInvalidArgument, degree, controlPointCount)
	}
	if controlPointCount < degree+1 {
		return nil, fmt.Errorf("%w: a curve of degree %d needs at least %d control points, got %d",
			ErrInvalidArgument, degree, degree+1, controlPointCount)
	}

	n := controlPointCount + degree + 1
	knots := make(KnotVector, n)
	if !clamped {
		for i := range knots {
			knots[i] = float64(i) / float64(n-1)
		}
		return knots, nil
	}

	segments := controlPointCount - degree
	for i := 1; i < segments; i++ {
		knots[degree+i] = float64(i) / float64(segments)
	}
	for i := n - degree - 1; i < n; i++ {
		knots[i] = 1
	}
	return knots, nil
}

// Clone returns a copy of kv that shares no memory with it.
func (kv KnotVector) Clone() KnotVector {
	if kv == nil {
		return nil
	}
	return slices.Clone(kv)
}

// Domain returns the first and the last knot.
func (kv KnotVector) Domain() (start, end float64) {
	if len(kv) == 0 {
		return 0, 0
	}
	return kv[0], kv[len(kv)-1]
}

// AreValid reports whether kv fits a curve of the given degree with
// controlPointCount control points: it has controlPointCount+degree+1 knots,
// is non-decreasing, and no knot occurs more than degree+1 times.
func (kv KnotVector) AreValid(degree, controlPointCount int) bool {
	if degree <= 0 || controlPointCount <= 0 {
		return false
	}
	if len(kv) != controlPointCount+degree+1 {
		return false
	}
	if !kv.IsNonDecreasing() {
		return false
	}
	for _, m := range kv.Multiplicities() {
		if m.Mult > degree+1 {
			return false
		}
	}
	return true
}

// IsNonDecreasing reports whether every knot is at least as large as its
// predecessor.
func (kv KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// IsClamped reports whether the first and the last knot each occur degree+1
// times.
func (kv KnotVector) IsClamped(degree int) bool {
	if degree <= 0 || len(kv) < 2*(degree+1) {
		return false
	}
	mults := kv.Multiplicities()
	return mults[0].Mult == degree+1 && mults[len(mults)-1].Mult == degree+1
}

// Multiplicities returns the distinct knots of kv in order, together with the
// number of times each of them occurs. Knots closer than [Epsilon] count as
// equal.
func (kv KnotVector) Multiplicities() []KnotMultiplicity {
	if len(kv) == 0 {
		return nil
	}
	mults := []KnotMultiplicity{{kv[0], 0}}
	cur := 0
	for _, knot := range kv {
		if !scalar.EqualWithinAbs(knot, mults[cur].Knot, Epsilon) {
			mults = append(mults, KnotMultiplicity{knot, 0})
			cur++
		}
		mults[cur].Mult++
	}
	return mults
}

// Multiplicity returns the number of knots equal to u.
func (kv KnotVector) Multiplicity(u float64) int {
	var n int
	for _, knot := range kv {
		if scalar.EqualWithinAbs(knot, u, Epsilon) {
			n++
		}
	}
	return n
}

// Normalize returns a copy of kv, linearly rescaled so that its first knot is
// 0 and its last knot is 1. If kv has fewer than two distinct values, the
// domain has no width and an unchanged copy is returned.
//
// Normalizing an already normalized vector returns an identical vector.
func (kv KnotVector) Normalize() KnotVector {
	out := kv.Clone()
	if len(kv) < 2 {
		return out
	}
	lo, hi := floats.Min(kv), floats.Max(kv)
	width := hi - lo
	if width <= 0 {
		return out
	}
	for i, k := range kv {
		// Divide rather than multiply by the reciprocal so that values that
		// are representable stay exact.
		out[i] = (k - lo) / width
	}
	return out
}

// Span returns the index of the knot span containing u, for a curve of the
// given degree. The span is the index i with kv[i] <= u < kv[i+1]; u at the
// end of the domain belongs to the last non-empty span.
func (kv KnotVector) Span(degree int, u float64) int {
	n := len(kv) - degree - 2
	if u >= kv[n+1] {
		return n
	}
	if u <= kv[degree] {
		return degree
	}

	low, high := degree, n+1
	mid := (low + high) / 2
	for u < kv[mid] || u >= kv[mid+1] {
		if u < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// Reversed returns the knot vector of the reversed curve. It has the same
// domain and the mirrored spacing.
func (kv KnotVector) Reversed() KnotVector {
	if len(kv) == 0 {
		return nil
	}
	start, end := kv.Domain()
	out := make(KnotVector, len(kv))
	for i := range kv {
		out[i] = start + end - kv[len(kv)-1-i]
	}
	return out
}

// shifted returns a copy of kv with delta added to every knot.
func (kv KnotVector) shifted(delta float64) KnotVector {
	out := kv.Clone()
	floats.AddConst(delta, out)
	return out
}

func (kv KnotVector) String() string {
	return fmt.Sprint([]float64(kv))
}
