package nurbs

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform describes an affine transform in 3D via coefficients.
//
// If the coefficients are (n0, …, n11), then the resulting
// transformation represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	| 0  0  0  1   |
//
// That is, the first three columns are the images of the x, y and z unit
// vectors and the last column is the translation. The idea is that
// (A * B) * v == A * (B * v).
//
// NURBS curves are invariant under affine transformations: transforming the
// control points transforms the curve.
type Transform struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Transform{N0: 1, N4: 1, N8: 1}

// Scale creates a transform representing non-uniform scaling along the
// coordinate axes.
func Scale(x, y, z float64) Transform {
	return Transform{N0: x, N4: y, N8: z}
}

// Translate creates a transform representing translation.
func Translate(v Vec3) Transform {
	t := Identity
	t.N9, t.N10, t.N11 = v.X, v.Y, v.Z
	return t
}

// Rotate creates a transform representing a right-handed rotation of th
// radians about axis, which passes through the origin.
func Rotate(axis Vec3, th float64) Transform {
	rot := r3.NewRotation(th, axis.Normalize().r3())
	x := rot.Rotate(r3.Vec{X: 1})
	y := rot.Rotate(r3.Vec{Y: 1})
	z := rot.Rotate(r3.Vec{Z: 1})
	return Transform{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
		0, 0, 0,
	}
}

// RotateAbout creates a transform representing a rotation of th radians about
// the line through center with direction axis.
//
// See [Rotate] for more info.
func RotateAbout(axis Vec3, th float64, center Point) Transform {
	c := Vec3(center)
	return Translate(c.Negate()).ThenRotate(axis, th).ThenTranslate(c)
}

// Coefficients returns the the coefficients of the transform.
func (t Transform) Coefficients() [12]float64 {
	return [12]float64{t.N0, t.N1, t.N2, t.N3, t.N4, t.N5, t.N6, t.N7, t.N8, t.N9, t.N10, t.N11}
}

// NewTransform creates a new transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Transform] manually.
func NewTransform(n [12]float64) Transform {
	return Transform{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (t Transform) column(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{t.N0, t.N1, t.N2}
	case 1:
		return Vec3{t.N3, t.N4, t.N5}
	case 2:
		return Vec3{t.N6, t.N7, t.N8}
	default:
		return Vec3{t.N9, t.N10, t.N11}
	}
}

// apply maps a vector through the linear part of t.
func (t Transform) apply(v Vec3) Vec3 {
	return Vec3{
		X: t.N0*v.X + t.N3*v.Y + t.N6*v.Z,
		Y: t.N1*v.X + t.N4*v.Y + t.N7*v.Z,
		Z: t.N2*v.X + t.N5*v.Y + t.N8*v.Z,
	}
}

func (t Transform) Mul(o Transform) Transform {
	c0 := t.apply(o.column(0))
	c1 := t.apply(o.column(1))
	c2 := t.apply(o.column(2))
	tr := t.apply(o.column(3)).Add(t.column(3))
	return Transform{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
		tr.X, tr.Y, tr.Z,
	}
}

// ThenRotate creates t followed by a rotation of th about axis.
//
// Equivalent to "Rotate(axis, th) * t"
func (t Transform) ThenRotate(axis Vec3, th float64) Transform {
	return Rotate(axis, th).Mul(t)
}

// ThenScale creates t followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * t"
func (t Transform) ThenScale(x, y, z float64) Transform {
	return Scale(x, y, z).Mul(t)
}

// PreTranslate creates a translation of v followed by t.
//
// Equivalent to "t * Translate(v)"
func (t Transform) PreTranslate(v Vec3) Transform {
	return t.Mul(Translate(v))
}

// ThenTranslate creates t followed by a translation of v.
//
// Equivalent to "Translate(v) * t"
func (t Transform) ThenTranslate(v Vec3) Transform {
	t.N9 += v.X
	t.N10 += v.Y
	t.N11 += v.Z
	return t
}

// Determinant computes the determinant of the linear part.
func (t Transform) Determinant() float64 {
	return t.column(0).Dot(t.column(1).Cross(t.column(2)))
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (t Transform) Invert() Transform {
	a, b, c := t.column(0), t.column(1), t.column(2)
	invDet := 1 / t.Determinant()
	// Rows of the inverse are the cross products of the columns.
	r0 := b.Cross(c).Mul(invDet)
	r1 := c.Cross(a).Mul(invDet)
	r2 := a.Cross(b).Mul(invDet)
	tr := t.column(3)
	return Transform{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
		-r0.Dot(tr), -r1.Dot(tr), -r2.Dot(tr),
	}
}

// Similarity reports whether t is a similarity transform, that is, composed
// of rotations, reflections, translations and uniform scaling only. If it is,
// the scale factor is returned as well.
func (t Transform) Similarity() (float64, bool) {
	const tolerance = 1e-9
	a, b, c := t.column(0), t.column(1), t.column(2)
	s2 := a.Length2()
	if s2 == 0 {
		return 0, false
	}
	ok := math.Abs(b.Length2()-s2) <= tolerance*s2 &&
		math.Abs(c.Length2()-s2) <= tolerance*s2 &&
		math.Abs(a.Dot(b)) <= tolerance*s2 &&
		math.Abs(b.Dot(c)) <= tolerance*s2 &&
		math.Abs(a.Dot(c)) <= tolerance*s2
	return math.Sqrt(s2), ok
}

func (t Transform) IsInf() bool {
	for _, n := range t.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (t Transform) IsNaN() bool {
	for _, n := range t.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this transformation.
func (t Transform) Translation() Vec3 {
	return t.column(3)
}

// WithTranslation replaces the translation portion of this transformation.
func (t Transform) WithTranslation(v Vec3) Transform {
	t.N9, t.N10, t.N11 = v.X, v.Y, v.Z
	return t
}
