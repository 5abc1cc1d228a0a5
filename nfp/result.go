package nfp

import "github.com/polynest/nest2d/geom"

// Outcome classifies a Result instead of using exceptions/panics for
// algorithmic fallback paths (spec design note: "model as explicit result
// variants").
type Outcome int

const (
	// Ok means the calculator produced a definitive answer. Loops may still
	// be empty for an inner-NFP query: that legitimately means the part
	// cannot fit anywhere in the container (spec: "too big").
	Ok Outcome = iota

	// NoFit means the calculator could not close an orbit or resolve a
	// decomposition within its iteration budget; the pair is treated as
	// non-placeable and the outcome is cached so it is never retried.
	NoFit

	// Degenerate means an input polygon was structurally invalid: fewer
	// than three vertices, or an edge shorter than Eps.
	Degenerate
)

// Result is the value a Calculator or Cache returns for one Key: an
// Outcome plus, for Ok, the NFP loops. For convex (or hull-approximated)
// input the outer NFP is a single loop; when ExploreConcave decomposes
// concave input, the union of the pieces' sums can also return loops
// bounding holes in that region. For an inner NFP, Loops holds the
// boundary loops of the feasible region: one loop per disjoint feasible
// area (a decomposed concave container can yield several), plus one loop
// around each forbidden island cut out for a container hole. Every loop is
// normalized to CCW winding, so winding does not tell island loops apart
// from feasible-area loops.
type Result struct {
	Outcome Outcome
	Loops   []geom.Polygon
}

func ok(loops []geom.Polygon) Result     { return Result{Outcome: Ok, Loops: loops} }
func noFit() Result                      { return Result{Outcome: NoFit} }
func degenerate() Result                 { return Result{Outcome: Degenerate} }
func okEmpty() Result                    { return Result{Outcome: Ok, Loops: nil} }
