package nurbs

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// ElevateDegree returns a curve of the given degree that has the same shape
// and parametrization as c. If degree is not larger than the degree of c, c
// is returned.
//
// The knots of c have to be clamped. Every distinct knot of the result occurs
// degree-c.Degree() times more often than in c, and the number of control
// points grows accordingly. An interior knot of multiplicity c.Degree()+1
// breaks c into independent pieces; such a knot keeps multiplicity degree+1.
//
// This is algorithm A5.9 of The NURBS Book. The curve is decomposed into
// Bézier segments, each segment is elevated, and the interior knots are
// removed again as far as the original continuity allows.
func ElevateDegree(c *NurbsCurve, degree int) (*NurbsCurve, error) {
	p := c.degree
	if degree <= p {
		return c, nil
	}
	if !c.knots.IsClamped(p) {
		return nil, fmt.Errorf("%w: cannot elevate the degree of a curve with unclamped knots %v", ErrInvalidArgument, c.knots)
	}
	tracer().Debugf("elevating degree %d curve with %d control points to degree %d", p, len(c.controlPoints), degree)

	pieces := c.splitAtBreaks()
	if len(pieces) == 1 {
		return elevateClamped(c, degree), nil
	}
	tracer().Debugf("curve breaks into %d pieces", len(pieces))
	var knots KnotVector
	var cps []Point4
	for i, piece := range pieces {
		e := elevateClamped(piece, degree)
		if i == 0 {
			knots = append(knots, e.knots...)
		} else {
			knots = append(knots, e.knots[degree+1:]...)
		}
		cps = append(cps, e.controlPoints...)
	}
	return newNurbsCurve(degree, knots, cps), nil
}

// splitAtBreaks splits c at every interior knot of multiplicity degree+1.
// The pieces share their end knots and are clamped; the control points at
// a break may differ.
func (c *NurbsCurve) splitAtBreaks() []*NurbsCurve {
	p := c.degree
	U := c.knots
	var pieces []*NurbsCurve
	start := 0
	for k := p + 1; k+p <= len(U)-p-2; k++ {
		if U[k] != U[k+p] {
			continue
		}
		pieces = append(pieces, newNurbsCurve(p, U[start:k+p+1], c.controlPoints[start:k]))
		start = k
		k += p
	}
	return append(pieces, newNurbsCurve(p, U[start:], c.controlPoints[start:]))
}

// elevateClamped elevates a curve with clamped knots and interior knot
// multiplicities of at most its degree.
func elevateClamped(c *NurbsCurve, degree int) *NurbsCurve {
	p := c.degree
	U := c.knots
	Pw := c.controlPoints
	t := degree - p
	ph := degree
	ph2 := ph / 2
	m := len(U) - 1

	distinct := 1
	for i := 1; i < len(U); i++ {
		if U[i] != U[i-1] {
			distinct++
		}
	}
	Qw := make([]Point4, len(Pw)+t*(distinct-1))
	Uh := make(KnotVector, len(U)+t*distinct)

	// Coefficients for degree elevating the Bézier segments.
	bezalfs := make([][]float64, ph+1)
	for i := range bezalfs {
		bezalfs[i] = make([]float64, p+1)
	}
	bezalfs[0][0] = 1
	bezalfs[ph][p] = 1
	for i := 1; i <= ph2; i++ {
		inv := 1 / float64(combin.Binomial(ph, i))
		for j := max(0, i-t); j <= min(p, i); j++ {
			bezalfs[i][j] = inv * float64(combin.Binomial(p, j)*combin.Binomial(t, i-j))
		}
	}
	for i := ph2 + 1; i < ph; i++ {
		for j := max(0, i-t); j <= min(p, i); j++ {
			bezalfs[i][j] = bezalfs[ph-i][p-j]
		}
	}

	bpts := make([]Point4, p+1)
	ebpts := make([]Point4, ph+1)
	nextbpts := make([]Point4, p)
	alfs := make([]float64, p)

	kind := ph + 1
	r := -1
	a := p
	b := p + 1
	cind := 1
	ua := U[0]
	Qw[0] = Pw[0]
	for i := 0; i <= ph; i++ {
		Uh[i] = ua
	}
	copy(bpts, Pw[:p+1])

	for b < m {
		i := b
		for b < m && U[b] == U[b+1] {
			b++
		}
		mul := b - i + 1
		ub := U[b]
		oldr := r
		r = p - mul

		// Insert knot ub r times.
		lbz := 1
		if oldr > 0 {
			lbz = (oldr + 2) / 2
		}
		rbz := ph
		if r > 0 {
			rbz = ph - (r+1)/2
		}
		if r > 0 {
			numer := ub - ua
			for k := p; k > mul; k-- {
				alfs[k-mul-1] = numer / (U[a+k] - ua)
			}
			for j := 1; j <= r; j++ {
				save := r - j
				s := mul + j
				for k := p; k >= s; k-- {
					bpts[k] = bpts[k-1].Lerp(bpts[k], alfs[k-s])
				}
				nextbpts[save] = bpts[p]
			}
		}

		// Degree elevate the Bézier segment.
		for i := lbz; i <= ph; i++ {
			ebpts[i] = Point4{}
			for j := max(0, i-t); j <= min(p, i); j++ {
				ebpts[i] = ebpts[i].Add(bpts[j].Mul(bezalfs[i][j]))
			}
		}

		// Remove knot ua oldr times.
		if oldr > 1 {
			first := kind - 2
			last := kind
			den := ub - ua
			bet := (ub - Uh[kind-1]) / den
			for tr := 1; tr < oldr; tr++ {
				i, j := first, last
				kj := j - kind + 1
				for j-i > tr {
					if i < cind {
						alf := (ub - Uh[i]) / (ua - Uh[i])
						Qw[i] = Qw[i-1].Lerp(Qw[i], alf)
					}
					if j >= lbz {
						if j-tr <= kind-ph+oldr {
							gam := (ub - Uh[j-tr]) / den
							ebpts[kj] = ebpts[kj+1].Lerp(ebpts[kj], gam)
						} else {
							ebpts[kj] = ebpts[kj+1].Lerp(ebpts[kj], bet)
						}
					}
					i++
					j--
					kj--
				}
				first--
				last++
			}
		}

		if a != p {
			for range ph - oldr {
				Uh[kind] = ua
				kind++
			}
		}
		for j := lbz; j <= rbz; j++ {
			Qw[cind] = ebpts[j]
			cind++
		}

		if b < m {
			copy(bpts, nextbpts[:max(r, 0)])
			for j := max(r, 0); j <= p; j++ {
				bpts[j] = Pw[b-p+j]
			}
			a = b
			b++
			ua = ub
		} else {
			for i := 0; i <= ph; i++ {
				Uh[kind+i] = ub
			}
		}
	}

	return newNurbsCurve(degree, Uh[:kind+ph+1], Qw[:cind])
}
