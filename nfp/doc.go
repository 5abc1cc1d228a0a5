// Package nfp computes no-fit polygons (spec component N): the outer NFP of
// two polygons A and B (the locus of B's reference point where B touches but
// does not overlap A), and the inner NFP of a container and a part (the
// locus where the part lies entirely inside the container).
//
// Algorithm selection:
//
//   - Convex–convex outer NFP uses the Minkowski-sum fast path (convex.go):
//     merge A's and (-B)'s edges by polar angle in a single O(|A|+|B|) sweep.
//   - Inner NFP against a convex region uses the support-function erosion
//     in convex.go (InnerFitConvex), which is exact for a convex region and
//     any candidate polygon B.
//   - Without Options.ExploreConcave, a concave A or B is replaced by its
//     convex hull. With it, decompose.go recursively splits the polygon
//     into convex pieces at reflex vertices; the outer/inner NFP of the
//     whole shape is then the exact union, over every pair of convex
//     pieces, of the corresponding convex-convex result — Minkowski sum
//     distributes over union, so this is not an approximation for the outer
//     case. For the inner case the union of per-piece inner-fits is a sound
//     (no false "fits") but not always complete (may miss some valid
//     positions that straddle a decomposition seam) subset of the true
//     inner NFP; see DESIGN.md.
//
// Failure: numerical degeneracies are tolerated by Eps-snapping; a pair the
// calculator cannot resolve returns the NoFit outcome rather than a
// zero-polygon Ok, and the cache persists that outcome so it is never
// retried for the same key (spec 4.N/4.K).
package nfp
