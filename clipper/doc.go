// Package clipper bridges nest2d's float-coordinate geom.Polygon values to
// github.com/CWBudde/Go-Clipper2's exact integer-arithmetic clipping engine,
// and back.
//
// What:
//
//   - Offset inflates (spacing > 0) or deflates (spacing < 0) a polygon using
//     miter joins with a fixed 2.0 limit and closed-polygon end type.
//   - Union merges a list of polygons into their non-overlapping outline set.
//   - Difference subtracts one set of polygons from another.
//
// Why: Clipper2's integer arithmetic is exact and immune to the accumulation
// error that plain float-polygon offsetting/boolean-ops suffer from; every
// clearance (`spacing`) and every NFP-loop merge in nest2d goes through here
// rather than through ad hoc float geometry.
//
// Scaling: floats are scaled to int64 by ScaleFactor (>= 1e7, per spec) before
// crossing into Go-Clipper2 and rescaled back on the way out.
//
// Failure: if scaling would overflow int64, or a required-non-empty result
// comes back empty, the caller receives ErrInfeasible and is expected to
// handle it locally (e.g. "cannot apply spacing here").
package clipper
