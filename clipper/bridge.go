package clipper

import (
	clipper2 "github.com/CWBudde/Go-Clipper2/port"

	"github.com/polynest/nest2d/geom"
)

// MiterLimit is the fixed miter limit used for every offset operation, per
// spec's "miter joins with a fixed limit (2.0)".
const MiterLimit = 2.0

// Offset inflates poly by delta world units (positive = outward, negative =
// inward) using miter joins and a closed-polygon end type. A zero delta
// returns poly unchanged. Returns ErrInfeasible if scaling overflows or the
// result is empty.
func Offset(poly geom.Polygon, delta float64) (geom.Polygon, error) {
	if delta == 0 {
		return poly, nil
	}
	path, err := toPath64(poly)
	if err != nil {
		return geom.Polygon{}, err
	}

	co := clipper2.NewClipperOffset(MiterLimit, 0.25*ScaleFactor)
	co.AddPath(path, clipper2.JoinMiter, clipper2.EndPolygon)
	result, err := co.Execute(delta * ScaleFactor)
	if err != nil {
		return geom.Polygon{}, ErrInfeasible
	}
	if len(result) == 0 {
		return geom.Polygon{}, ErrInfeasible
	}
	// A pure inward/outward offset of a single simple polygon stays a single
	// loop; pick the largest-area result if the engine split it.
	best := result[0]
	bestArea := geom.AbsArea(fromPath64(best, poly.ID))
	for _, cand := range result[1:] {
		a := geom.AbsArea(fromPath64(cand, poly.ID))
		if a > bestArea {
			best, bestArea = cand, a
		}
	}
	return fromPath64(best, poly.ID), nil
}

// Union merges polys into their non-overlapping outline set using the
// non-zero fill rule. Returns ErrEmptyInput if polys is empty.
func Union(polys []geom.Polygon) ([]geom.Polygon, error) {
	if len(polys) == 0 {
		return nil, ErrEmptyInput
	}
	paths, err := toPaths64(polys)
	if err != nil {
		return nil, err
	}
	result, err := clipper2.Union(paths, clipper2.NonZero)
	if err != nil {
		return nil, ErrInfeasible
	}
	return fromPaths64(result), nil
}

// Difference subtracts clip polygons from subject polygons using the
// non-zero fill rule. An empty result (subject fully covered by clip) is a
// valid, non-error outcome: the caller interprets "no remaining region" as
// "no feasible placement", not as a clipper failure.
func Difference(subject, clip []geom.Polygon) ([]geom.Polygon, error) {
	if len(subject) == 0 {
		return nil, nil
	}
	subPaths, err := toPaths64(subject)
	if err != nil {
		return nil, err
	}
	if len(clip) == 0 {
		return fromPaths64(subPaths), nil
	}
	clipPaths, err := toPaths64(clip)
	if err != nil {
		return nil, err
	}
	result, err := clipper2.Difference(subPaths, clipPaths, clipper2.NonZero)
	if err != nil {
		return nil, ErrInfeasible
	}
	return fromPaths64(result), nil
}
