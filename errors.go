package nurbs

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is the error type of this package. Functions wrap one of the
// constants below, use [errors.Is] to test for them.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged when construction inputs are malformed, such as
// a non-positive degree or a knot vector that doesn't fit its control points.
const ErrInvalidArgument = Error("invalid argument")

// ErrInvalidOperation is flagged when an operation violates the join contract
// of a polycurve.
const ErrInvalidOperation = Error("invalid operation")

// Epsilon is the tolerance for coincident points and equal parameter values.
const Epsilon = 1e-10
