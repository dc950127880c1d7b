package joincmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"honnef.co/go/nurbs"
)

// ParseSegments decodes a segment description of the form
//
//	{"segments": [
//		{"type": "line", "from": [0, 0, 0], "to": [1, 0, 0]},
//		{"type": "arc", "points": [[1, 0, 0], [2, 1, 0], [3, 0, 0]]},
//		{"type": "quad", "points": [[3, 0, 0], [4, 1, 0], [5, 0, 0]]},
//		{"type": "cubic", "points": [[5, 0, 0], [6, 1, 0], [7, 1, 0], [8, 0, 0]]},
//		{"type": "nurbs", "degree": 2, "points": [...], "weights": [...], "knots": [...]},
//		{"type": "poly", "segments": [...]}
//	]}
//
// For nurbs segments, weights default to 1 and knots default to a clamped,
// evenly spaced vector. Poly segments are joined into a nested polycurve.
func ParseSegments(data []byte) ([]nurbs.Segment, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("input is not valid JSON")
	}
	return parseSegmentList(gjson.ParseBytes(data).Get("segments"), "segments")
}

func parseSegmentList(r gjson.Result, path string) ([]nurbs.Segment, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%s: expected an array", path)
	}
	var segs []nurbs.Segment
	for i, v := range r.Array() {
		seg, err := parseSegment(v, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%s: no segments", path)
	}
	return segs, nil
}

func parseSegment(r gjson.Result, path string) (nurbs.Segment, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("%s: expected an object", path)
	}
	switch typ := r.Get("type").String(); typ {
	case "line":
		from, err := parsePoint(r.Get("from"), path+".from")
		if err != nil {
			return nil, err
		}
		to, err := parsePoint(r.Get("to"), path+".to")
		if err != nil {
			return nil, err
		}
		return nurbs.Line{P0: from, P1: to}, nil

	case "arc":
		pts, err := parseControlPoints(r, path, 3)
		if err != nil {
			return nil, err
		}
		arc, err := nurbs.ArcFromPoints(pts[0], pts[1], pts[2])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return arc, nil

	case "quad":
		pts, err := parseControlPoints(r, path, 3)
		if err != nil {
			return nil, err
		}
		return nurbs.QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}, nil

	case "cubic":
		pts, err := parseControlPoints(r, path, 4)
		if err != nil {
			return nil, err
		}
		return nurbs.CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}, nil

	case "nurbs":
		return parseNurbs(r, path)

	case "poly":
		segs, err := parseSegmentList(r.Get("segments"), path+".segments")
		if err != nil {
			return nil, err
		}
		pc := nurbs.NewPolyCurve()
		for i, seg := range segs {
			if err := pc.Append(seg); err != nil {
				return nil, fmt.Errorf("%s.segments[%d]: %w", path, i, err)
			}
		}
		return pc, nil

	case "":
		return nil, fmt.Errorf("%s: missing segment type", path)
	default:
		return nil, fmt.Errorf("%s: unknown segment type %q", path, typ)
	}
}

func parseNurbs(r gjson.Result, path string) (nurbs.Segment, error) {
	degree := r.Get("degree")
	if degree.Type != gjson.Number {
		return nil, fmt.Errorf("%s.degree: expected a number", path)
	}
	if f := degree.Float(); f != math.Trunc(f) {
		return nil, fmt.Errorf("%s.degree: expected an integer, got %s", path, degree.Raw)
	}
	pts, err := parsePoints(r.Get("points"), path+".points")
	if err != nil {
		return nil, err
	}

	var weights []float64
	if w := r.Get("weights"); w.Exists() {
		if weights, err = parseFloats(w, path+".weights"); err != nil {
			return nil, err
		}
	}

	var knots nurbs.KnotVector
	if k := r.Get("knots"); k.Exists() {
		if knots, err = parseFloats(k, path+".knots"); err != nil {
			return nil, err
		}
	} else if knots, err = nurbs.NewKnotVector(int(degree.Int()), len(pts), true); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c, err := nurbs.NewNurbsCurve(int(degree.Int()), knots, pts, weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// parseControlPoints parses the points of a segment that needs exactly n of
// them.
func parseControlPoints(r gjson.Result, path string, n int) ([]nurbs.Point, error) {
	pts, err := parsePoints(r.Get("points"), path+".points")
	if err != nil {
		return nil, err
	}
	if len(pts) != n {
		return nil, fmt.Errorf("%s.points: %s segment needs %d points, got %d", path, r.Get("type").String(), n, len(pts))
	}
	return pts, nil
}

func parsePoints(r gjson.Result, path string) ([]nurbs.Point, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%s: expected an array of points", path)
	}
	var pts []nurbs.Point
	for i, v := range r.Array() {
		pt, err := parsePoint(v, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// parsePoint accepts [x, y] and [x, y, z].
func parsePoint(r gjson.Result, path string) (nurbs.Point, error) {
	coords, err := parseFloats(r, path)
	if err != nil {
		return nurbs.Point{}, err
	}
	switch len(coords) {
	case 2:
		return nurbs.Pt(coords[0], coords[1], 0), nil
	case 3:
		return nurbs.Pt(coords[0], coords[1], coords[2]), nil
	default:
		return nurbs.Point{}, fmt.Errorf("%s: expected 2 or 3 coordinates, got %d", path, len(coords))
	}
}

func parseFloats(r gjson.Result, path string) ([]float64, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%s: expected an array of numbers", path)
	}
	vals := r.Array()
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v.Type != gjson.Number {
			return nil, fmt.Errorf("%s[%d]: expected a number, got %s", path, i, v.Raw)
		}
		out[i] = v.Float()
	}
	return out, nil
}
