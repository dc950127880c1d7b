package joincmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"honnef.co/go/nurbs"
)

const lineAndCubic = `{"segments": [
	{"type": "line", "from": [0, 0, 0], "to": [1, 0, 0]},
	{"type": "nurbs", "degree": 3, "points": [[1, 0, 0], [2, 1, 0], [3, 1, 0], [4, 0, 0]]}
]}`

func TestRun(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	var out bytes.Buffer
	cfg := Config{Input: "-", Indent: "  ", Samples: 3}
	if err := Run(cfg, strings.NewReader(lineAndCubic), &out); err != nil {
		t.Fatal(err)
	}

	var got Output
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := Output{
		Degree: 3,
		Knots:  []float64{0, 0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1, 1},
		ControlPoints: [][3]float64{
			{0, 0, 0}, {1.0 / 3, 0, 0}, {2.0 / 3, 0, 0}, {1, 0, 0},
			{2, 1, 0}, {3, 1, 0}, {4, 0, 0},
		},
		Weights: []float64{1, 1, 1, 1, 1, 1, 1},
		Samples: [][3]float64{{0, 0, 0}, {1, 0, 0}, {4, 0, 0}},
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
	if !strings.Contains(out.String(), "\n  \"degree\": 3") {
		t.Errorf("output is not indented:\n%s", out.String())
	}
}

func TestRunVerbose(t *testing.T) {
	before := gtrace.CoreTracer
	defer func() { gtrace.CoreTracer = before }()

	cfg := Config{Input: "-", Verbose: true}
	if err := Run(cfg, strings.NewReader(lineAndCubic), nil); err != nil {
		t.Fatal(err)
	}
	if gtrace.CoreTracer == before {
		t.Error("verbose run didn't install a logging tracer")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	const square = `{"segments": [
		{"type": "line", "from": [0, 0], "to": [1, 0]},
		{"type": "line", "from": [1, 0], "to": [1, 1]},
		{"type": "line", "from": [1, 1], "to": [0, 1]},
		{"type": "line", "from": [0, 1], "to": [0, 0]}
	]}`
	if err := os.WriteFile(path, []byte(square), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(Config{Input: path}, nil, &out); err != nil {
		t.Fatal(err)
	}
	var got Output
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Closed {
		t.Error("square is not closed")
	}
	if got.Samples != nil {
		t.Errorf("got %d samples, want none", len(got.Samples))
	}
}

func TestRunErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	const disconnected = `{"segments": [
		{"type": "line", "from": [0, 0, 0], "to": [1, 0, 0]},
		{"type": "line", "from": [2, 0, 0], "to": [3, 0, 0]}
	]}`
	err := Run(Config{Input: "-"}, strings.NewReader(disconnected), nil)
	if !errors.Is(err, nurbs.ErrInvalidOperation) {
		t.Errorf("got %v, want ErrInvalidOperation", err)
	}
	if err != nil && !strings.Contains(err.Error(), "segment 1") {
		t.Errorf("error %q doesn't name the segment", err)
	}

	if err := Run(Config{Input: "-"}, strings.NewReader("nope"), nil); err == nil {
		t.Error("invalid JSON was accepted")
	}
	if err := Run(Config{Input: filepath.Join(t.TempDir(), "missing.json")}, nil, nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want os.ErrNotExist", err)
	}
}

func TestNewOutputSingleSample(t *testing.T) {
	pc, err := Join([]nurbs.Segment{nurbs.Line{P0: nurbs.Pt(1, 2, 3), P1: nurbs.Pt(4, 5, 6)}})
	if err != nil {
		t.Fatal(err)
	}
	got := NewOutput(pc, 1)
	if d := cmp.Diff([][3]float64{{1, 2, 3}}, got.Samples); d != "" {
		t.Error(d)
	}
}
