package nurbs

import (
	"fmt"
)

// Point4 is a homogeneous control point. X, Y and Z are the cartesian
// coordinates premultiplied by the weight W.
type Point4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Homogenize returns the weighted control point for pt with weight w.
func Homogenize(pt Point, w float64) Point4 {
	return Point4{
		X: pt.X * w,
		Y: pt.Y * w,
		Z: pt.Z * w,
		W: w,
	}
}

func (p Point4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", p.X, p.Y, p.Z, p.W)
}

// Dehomogenize returns the cartesian location of p.
func (p Point4) Dehomogenize() Point {
	if p.W == 0 {
		return Point{}
	}
	return Point{
		X: p.X / p.W,
		Y: p.Y / p.W,
		Z: p.Z / p.W,
	}
}

func (p Point4) Add(o Point4) Point4 {
	return Point4{
		X: p.X + o.X,
		Y: p.Y + o.Y,
		Z: p.Z + o.Z,
		W: p.W + o.W,
	}
}

func (p Point4) Mul(f float64) Point4 {
	return Point4{
		X: p.X * f,
		Y: p.Y * f,
		Z: p.Z * f,
		W: p.W * f,
	}
}

// Lerp linearly interpolates between two homogeneous points.
func (p Point4) Lerp(o Point4, t float64) Point4 {
	return p.Mul(1 - t).Add(o.Mul(t))
}

// Transform applies t to the cartesian location of p and keeps its weight.
func (p Point4) Transform(t Transform) Point4 {
	return Homogenize(p.Dehomogenize().Transform(t), p.W)
}

// PointWeights returns the weights of pts.
func PointWeights(pts []Point4) []float64 {
	ws := make([]float64, len(pts))
	for i, p := range pts {
		ws[i] = p.W
	}
	return ws
}

// DehomogenizePoints returns the cartesian locations of pts.
func DehomogenizePoints(pts []Point4) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Dehomogenize()
	}
	return out
}

// HomogenizePoints combines locations and weights into weighted control
// points. A nil weights slice means all weights are 1.
func HomogenizePoints(pts []Point, weights []float64) ([]Point4, error) {
	if weights != nil && len(weights) != len(pts) {
		return nil, fmt.Errorf("%w: %d weights for %d points", ErrInvalidArgument, len(weights), len(pts))
	}
	out := make([]Point4, len(pts))
	for i, pt := range pts {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: weight %g of point %d is not positive", ErrInvalidArgument, w, i)
		}
		out[i] = Homogenize(pt, w)
	}
	return out, nil
}
