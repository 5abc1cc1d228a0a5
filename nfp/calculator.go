package nfp

import (
	"errors"

	ngclipper "github.com/polynest/nest2d/clipper"
	"github.com/polynest/nest2d/geom"
)

// Options configures the calculator's handling of concave input.
type Options struct {
	// ExploreConcave, when true, recursively decomposes a concave polygon
	// into convex pieces and unions the per-piece results (spec:
	// "seed additional orbits from unvisited concave-pocket start
	// positions and union the resulting loops"). When false, a concave
	// polygon is approximated by its convex hull instead — cheaper, but it
	// can only see placements that would also fit the hull.
	ExploreConcave bool
}

// maxPieces bounds decomposition fan-out; pathological concave input that
// would need more pieces than this is treated as NoFit rather than left to
// run unbounded, mirroring spec 4.N's "fails to close an orbit within a
// bounded iteration count" contract.
const maxPieces = 64

// OuterNFP computes the outer NFP of A and B at their current (already
// rotated) orientations: the locus of positions for B's reference vertex
// where B touches but does not overlap A.
func OuterNFP(a, b geom.Polygon, opts Options) Result {
	if errors.Is(validatePolygon(a), ErrInvalidPolygon) || errors.Is(validatePolygon(b), ErrInvalidPolygon) {
		return degenerate()
	}
	piecesA := decomposeOrHull(a, opts)
	piecesB := decomposeOrHull(b, opts)
	if len(piecesA)*len(piecesB) > maxPieces {
		return noFit()
	}

	ref := refVertex(b)
	sums := make([]geom.Polygon, 0, len(piecesA)*len(piecesB))
	for _, pa := range piecesA {
		for _, pb := range piecesB {
			s := outerNFPConvex(pa, pb, ref)
			if len(s.Points) >= 3 {
				sums = append(sums, s)
			}
		}
	}
	if len(sums) == 0 {
		return noFit()
	}

	merged := sums
	if len(sums) > 1 {
		u, err := ngclipper.Union(sums)
		if err != nil {
			return noFit()
		}
		merged = u
	}
	return ok(normalizeLoops(merged))
}

// InnerNFP computes the inner NFP of container against part at their
// current orientations: the locus of positions for part's reference vertex
// where part lies entirely inside container, with container's holes
// subtracted out as forbidden zones.
func InnerNFP(container, part geom.Polygon, opts Options) Result {
	if errors.Is(validatePolygon(container), ErrInvalidPolygon) || errors.Is(validatePolygon(part), ErrInvalidPolygon) {
		return degenerate()
	}
	pieces := decomposeOrHull(container, opts)
	if len(pieces) > maxPieces {
		return noFit()
	}

	fits := make([]geom.Polygon, 0, len(pieces))
	for _, piece := range pieces {
		fit := InnerFitConvex(piece, part)
		if len(fit.Points) >= 3 {
			fits = append(fits, fit)
		}
	}
	if len(fits) == 0 {
		// Legitimately "too big to fit anywhere" — not a calculator
		// failure, so we report Ok with zero loops (spec 4.N).
		return okEmpty()
	}

	merged := fits
	if len(fits) > 1 {
		u, err := ngclipper.Union(fits)
		if err != nil {
			return noFit()
		}
		merged = u
	}
	loops := merged

	for _, hole := range container.Children {
		if len(hole.Points) < 3 {
			continue
		}
		forbidden := OuterNFP(hole, part, opts)
		if forbidden.Outcome != Ok || len(forbidden.Loops) == 0 {
			continue
		}
		diffed, err := ngclipper.Difference(loops, forbidden.Loops)
		if err != nil {
			continue // best-effort: keep the region computed so far
		}
		loops = diffed
	}
	if len(loops) == 0 {
		return okEmpty()
	}
	return ok(normalizeLoops(loops))
}

// validatePolygon reports ErrInvalidPolygon for input a calculator cannot
// reason about at all: fewer than three vertices, or a zero-length edge
// that collapses the polygon's boundary at that vertex. Such input is
// distinct from NoFit, which means the calculator tried and failed to
// close an orbit — here there is nothing to orbit.
func validatePolygon(p geom.Polygon) error {
	n := len(p.Points)
	if n < 3 {
		return ErrInvalidPolygon
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := p.Points[j].X - p.Points[i].X
		dy := p.Points[j].Y - p.Points[i].Y
		if dx*dx+dy*dy <= geom.Eps*geom.Eps {
			return ErrInvalidPolygon
		}
	}
	return nil
}

func decomposeOrHull(p geom.Polygon, opts Options) []geom.Polygon {
	ccw := geom.EnsureCCW(p)
	if geom.IsConvex(ccw) {
		return []geom.Polygon{ccw}
	}
	if opts.ExploreConcave {
		return ConvexDecompose(ccw)
	}
	return []geom.Polygon{geom.ConvexHull(ccw.Points)}
}

func normalizeLoops(loops []geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(loops))
	for _, l := range loops {
		d := geom.Dedup(l, geom.Eps)
		if len(d.Points) < 3 {
			continue
		}
		out = append(out, geom.EnsureCCW(d))
	}
	return out
}
