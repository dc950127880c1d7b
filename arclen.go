package nurbs

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultAccuracy is a reasonable accuracy for arc length computations.
const DefaultAccuracy = 1e-9

// Arclener is implemented by segments that can compute their arc length.
type Arclener interface {
	Arclen(accuracy float64) float64
}

// quadraturePoints is the number of Legendre-Gauss points per interval.
const quadraturePoints = 8

// arclen integrates speed over [t0, t1] by adaptive subdivision using
// Legendre-Gauss quadrature. An interval is split as long as the estimate of
// its halves differs from its own estimate by more than accuracy.
func arclen(speed func(float64) float64, t0, t1, accuracy float64) float64 {
	return arclenAdaptive(speed, t0, t1, quad.Fixed(speed, t0, t1, quadraturePoints, quad.Legendre{}, 0), accuracy, 0)
}

func arclenAdaptive(speed func(float64) float64, t0, t1, whole, accuracy float64, depth int) float64 {
	mid := (t0 + t1) / 2
	left := quad.Fixed(speed, t0, mid, quadraturePoints, quad.Legendre{}, 0)
	right := quad.Fixed(speed, mid, t1, quadraturePoints, quad.Legendre{}, 0)
	if math.Abs(left+right-whole) <= accuracy || depth >= 20 || math.IsNaN(whole) {
		return left + right
	}
	return arclenAdaptive(speed, t0, mid, left, accuracy/2, depth+1) +
		arclenAdaptive(speed, mid, t1, right, accuracy/2, depth+1)
}

// solveMonotone finds x in [lo, hi] with |f(x)| <= accuracy, for a
// non-decreasing f with f(lo) <= 0 <= f(hi) and derivative df. It takes Newton
// steps and falls back to bisection whenever a step leaves the bracket.
func solveMonotone(f, df func(float64) float64, lo, hi, accuracy float64) float64 {
	x := (lo + hi) / 2
	for range 100 {
		y := f(x)
		if math.Abs(y) <= accuracy {
			return x
		}
		if y < 0 {
			lo = x
		} else {
			hi = x
		}
		next := (lo + hi) / 2
		if d := df(x); d > 0 {
			if n := x - y/d; n > lo && n < hi {
				next = n
			}
		}
		if next == x || hi-lo <= 1e-15*math.Max(1, math.Abs(x)) {
			return next
		}
		x = next
	}
	return x
}
