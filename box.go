package nurbs

import (
	"math"
)

// Box is an axis-aligned box in 3D.
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBoxFromPoints returns the smallest box containing all of pts. With no
// points, it returns an empty box that acts as the identity of [Box.Union].
func NewBoxFromPoints(pts ...Point) Box {
	b := Box{
		X0: math.Inf(1), Y0: math.Inf(1), Z0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1), Z1: math.Inf(-1),
	}
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.X0 > b.X1 || b.Y0 > b.Y1 || b.Z0 > b.Z1
}

func (b Box) Min() Point { return Point{b.X0, b.Y0, b.Z0} }
func (b Box) Max() Point { return Point{b.X1, b.Y1, b.Z1} }

// Size returns the extents of the box along each axis.
func (b Box) Size() Vec3 {
	return b.Max().Sub(b.Min())
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return b.Min().Midpoint(b.Max())
}

// Contains reports whether pt lies in the closed box, within [Epsilon].
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.X0-Epsilon && pt.X <= b.X1+Epsilon &&
		pt.Y >= b.Y0-Epsilon && pt.Y <= b.Y1+Epsilon &&
		pt.Z >= b.Z0-Epsilon && pt.Z <= b.Z1+Epsilon
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint returns the smallest box containing b and pt.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}
