// Package geom provides the pure-function polygon algebra that the rest of
// nest2d builds on: points, polygons, signed area, centroid, axis-aligned
// bounds, rotation, translation, point-in-polygon, and simple-polygon
// intersection tests.
//
// What:
//
//   - Point is an (X, Y) pair in world units.
//   - Polygon is an ordered, open (no repeated last vertex) sequence of
//     Points, conventionally CCW for solids and CW for holes, plus optional
//     Children for holes/island recursion.
//   - All transforms (Rotate, Translate) return new Polygons; Polygon values
//     are never mutated in place.
//
// Why:
//
//   - Every other package (clipper, part, nfp, placement, ga) operates on
//     these primitives; keeping them dependency-free and side-effect-free
//     makes every downstream algorithm easy to test in isolation.
//
// Numeric tolerance:
//
//   - Eps (1e-9) is used for exact-equality comparisons (e.g. orbit closure).
//   - A caller-supplied tolerance (curve_tolerance, default 0.3) is used for
//     vertex deduplication after geometric operations; see Dedup.
//
// Complexity: most primitives here are O(n) or O(n log n) in the number of
// polygon vertices; the pairwise edge tests are quadratic (Intersects is
// O(|a|*|b|), Validate's self-intersection check is O(n^2)). None of them
// allocate more than O(n) extra space.
package geom
