package joincmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"honnef.co/go/nurbs"
)

// Output is the JSON form of a joined curve.
type Output struct {
	Degree        int          `json:"degree"`
	Knots         []float64    `json:"knots"`
	ControlPoints [][3]float64 `json:"control_points"`
	Weights       []float64    `json:"weights"`
	Closed        bool         `json:"closed"`
	Samples       [][3]float64 `json:"samples,omitempty"`
}

// Join appends segs in order to a new polycurve. It stops at the first
// segment that cannot be appended.
func Join(segs []nurbs.Segment) (*nurbs.PolyCurve, error) {
	pc := nurbs.NewPolyCurve()
	for i, seg := range segs {
		if err := pc.Append(seg); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return pc, nil
}

// NewOutput describes pc, evaluated at samples evenly spaced parameters if
// samples is positive.
func NewOutput(pc *nurbs.PolyCurve, samples int) Output {
	out := Output{
		Degree:  pc.Degree(),
		Knots:   pc.Knots(),
		Weights: pc.Weights(),
		Closed:  pc.IsClosed(),
	}
	for _, p := range pc.ControlPointLocations() {
		out.ControlPoints = append(out.ControlPoints, [3]float64{p.X, p.Y, p.Z})
	}
	start, end := pc.Domain()
	for i := range samples {
		u := start
		if samples > 1 {
			u += (end - start) * float64(i) / float64(samples-1)
		}
		p := pc.PointAt(u)
		out.Samples = append(out.Samples, [3]float64{p.X, p.Y, p.Z})
	}
	return out
}

// Run executes the nurbsjoin command: it reads the segment description named
// by cfg, joins it and writes the result to out. In verbose mode the core
// tracer logs at debug level, which includes the traces of package nurbs.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.Verbose {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	data, err := readInput(cfg.Input, in)
	if err != nil {
		return err
	}
	segs, err := ParseSegments(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.Input, err)
	}
	pc, err := Join(segs)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		gtrace.CoreTracer.Infof("joined %d segments into a curve of degree %d with %d control points",
			pc.SegmentCount(), pc.Degree(), len(pc.ControlPoints()))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", cfg.Indent)
	if err := enc.Encode(NewOutput(pc, cfg.Samples)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func readInput(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		if in == nil {
			return nil, errors.New("no input")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
