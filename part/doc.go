// Package part holds nest2d's data-model types (spec section 3): Part,
// RotatedPart, and Container, plus the stable-ID scheme the orchestrator
// uses to identify parts across a nesting run.
//
// What:
//
//   - Part is an identified polygon with its area, bounds, and allowed
//     rotation set (rotations k*360/R for k in [0,R)).
//   - RotatedPart caches one specific rotation's polygon, bounds, and area
//     so the placement worker never re-rotates inside its hot loop.
//   - Container normalizes its polygon so the bounding min-corner sits at
//     the origin, and its long axis runs along X.
//
// Why: keeping rotation caching and ID assignment here (rather than
// recomputing in ga/placement) is what lets placement.Evaluate's determinism
// guarantee hold — the same RotatedPart always has the same cached polygon.
package part
