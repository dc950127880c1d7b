// Package nurbs provides knot vectors, Non-Uniform Rational B-Spline curves,
// and a polycurve type that joins heterogeneous curve segments into a single
// NURBS representation. It is intended as the curve layer of a geometric
// modeling kernel.
//
// # Features
//
// We provide the following notable features:
//
//   - Knot vector generation, validation and normalization (see [KnotVector])
//   - Rational curve evaluation (see [NurbsCurve.PointAt])
//   - Degree elevation (see [ElevateDegree])
//   - Exact NURBS forms of lines, circular arcs and Bézier segments (see [Line.ToNurbs], [Arc.ToNurbs] and [CubicBez.ToNurbs])
//   - Derivatives and arc lengths (see [NurbsCurve.Derivative] and [NurbsCurve.Arclen])
//   - Joining segments into one curve (see [PolyCurve])
//   - Affine transformations in 3D (see [Transform])
//
// # Knot vectors
//
// A [KnotVector] is a non-decreasing sequence of parameter values. Its
// validity always depends on the degree p of the curve and the number n of
// control points it is used with: a valid vector has n+p+1 knots and no knot
// repeats more than p+1 times. Those two numbers are not stored in the
// vector; they are passed to the operations that need them.
//
// Knot vectors are plain slices and are never shared between curves. Every
// constructor and accessor in this package copies.
//
// # Segments and the NURBS contract
//
// [Segment] is implemented by everything that can be joined: [Line], [Arc],
// [QuadBez], [CubicBez], [*NurbsCurve] and [*PolyCurve]. A segment reports its start and end points,
// whether it is closed, and converts itself to a [*NurbsCurve].
//
// [Nurbs] describes the raw data of a NURBS curve: its degree, knots and
// weighted control points. Both [*NurbsCurve] and [*PolyCurve] implement it,
// so a polycurve can be used wherever a single NURBS curve is expected,
// including as a segment of another polycurve.
//
// # Joining
//
// A [PolyCurve] accepts segments one at a time. Each segment has to start
// where the polycurve currently ends, within [Epsilon], and nothing can be
// appended to a closed polycurve. After each append the unified curve is
// rebuilt from scratch: all segments are elevated to the highest degree among
// them, their knot vectors are concatenated, and the result is normalized to
// the domain [0, 1].
//
// Appends that fail return an error wrapping [ErrInvalidOperation] and leave
// the polycurve unchanged.
//
// # Concurrency
//
// All values in this package are either immutable or, in the case of
// [PolyCurve], owned by a single goroutine. Accessors return copies, so data
// obtained from a polycurve stays consistent after further appends.
//
// # Tracing
//
// The package traces to the key "nurbs" of [github.com/npillmayer/schuko/tracing].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [The NURBS Book] by Les Piegl and Wayne Tiller, in particular algorithms
//     A2.1 (knot span), A2.2 (basis functions), A4.1 (curve point),
//     A5.9 (degree elevation) and A7.1 (circular arcs)
//   - Legendre-Gauss quadrature with adaptive subdivision for arc lengths, as
//     provided by [gonum.org/v1/gonum/integrate/quad]
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
package nurbs
