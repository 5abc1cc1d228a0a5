// Package placement implements spec component P: the greedy
// per-individual placement worker that turns a permutation+rotation
// individual into concrete part placements and a fitness score.
//
// What: for parts in the order given, fetch the part's inner NFP against
// the container, subtract the forbidden region swept out by every
// already-placed part's outer NFP, and take the remaining region's
// cheapest vertex as the part's placement point. A part with no remaining
// region is left unplaced.
//
// Why: this is the textbook no-fit-polygon placement heuristic (Gomes &
// Oliveira / Burke et al.) — it reduces collision checking between two
// polygons to "is a point inside a precomputed region", which the
// nfp/nfpcache packages already make cheap and cacheable across the many
// individuals a GA generation evaluates.
//
// Complexity: O(k) NFP lookups per individual (k = number of parts,
// mostly cache hits after the first few generations) plus O(k^2) union/
// difference work in the worst case, since each new part's forbidden
// region unions one outer-NFP loop per already-placed part.
package placement
