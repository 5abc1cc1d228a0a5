package nfp

import (
	"math"

	"github.com/polynest/nest2d/geom"
)

// ConvexDecompose splits a simple (possibly concave) CCW polygon into a set
// of convex pieces by recursively cutting the shortest valid diagonal out of
// a reflex vertex. It returns a single-element slice unchanged when poly is
// already convex.
//
// This is the basis of the general outer/inner NFP path (nfp/calculator.go):
// a Minkowski sum distributes over union, so the exact outer NFP of two
// possibly-concave polygons is the union, over every pair of convex pieces,
// of their convex-convex Minkowski sum. The analogous inner-NFP union is a
// sound but not always complete approximation — see decompose_test.go and
// DESIGN.md.
//
// Complexity: O(n^2) per split attempt, O(n) splits in the worst case.
func ConvexDecompose(poly geom.Polygon) []geom.Polygon {
	ccw := geom.EnsureCCW(poly)
	pts := ccw.Points
	if len(pts) < 4 || geom.IsConvex(ccw) {
		return []geom.Polygon{ccw}
	}

	n := len(pts)
	reflexIdx := -1
	for i := 0; i < n; i++ {
		if isReflex(pts, i) {
			reflexIdx = i
			break
		}
	}
	if reflexIdx == -1 {
		return []geom.Polygon{ccw}
	}

	bestJ := -1
	bestDist := math.Inf(1)
	for j := 0; j < n; j++ {
		if j == reflexIdx {
			continue
		}
		if !diagonalValid(pts, reflexIdx, j) {
			continue
		}
		if d := math.Hypot(pts[j].X-pts[reflexIdx].X, pts[j].Y-pts[reflexIdx].Y); d < bestDist {
			bestDist, bestJ = d, j
		}
	}
	if bestJ == -1 {
		// No valid diagonal found (can happen on degenerate/near-colinear
		// input); return the piece as-is rather than loop forever. The
		// convex-only routines downstream receive this non-convex piece
		// unchanged; nothing checks its convexity again.
		return []geom.Polygon{ccw}
	}

	left, right := splitAt(pts, reflexIdx, bestJ)
	out := ConvexDecompose(geom.Polygon{Points: left})
	out = append(out, ConvexDecompose(geom.Polygon{Points: right})...)
	return out
}

func isReflex(pts []geom.Point, i int) bool {
	n := len(pts)
	prev := pts[(i-1+n)%n]
	cur := pts[i]
	next := pts[(i+1)%n]
	cross := (cur.X-prev.X)*(next.Y-cur.Y) - (cur.Y-prev.Y)*(next.X-cur.X)
	return cross < -geom.Eps
}

// diagonalValid reports whether (i,j) is a valid internal diagonal of the
// simple polygon pts: its midpoint lies inside the polygon, and it crosses
// no non-adjacent edge.
func diagonalValid(pts []geom.Point, i, j int) bool {
	n := len(pts)
	if i == j || (i+1)%n == j || (j+1)%n == i {
		return false
	}
	a, b := pts[i], pts[j]
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	poly := geom.Polygon{Points: pts}
	if !geom.PointInPolygon(mid, poly) {
		return false
	}
	for k := 0; k < n; k++ {
		k2 := (k + 1) % n
		if k == i || k == j || k2 == i || k2 == j {
			continue
		}
		if geom.SegmentsIntersect(a, b, pts[k], pts[k2]) {
			return false
		}
	}
	return true
}

// splitAt cuts pts along diagonal (i,j) into two sub-polygons that each
// include both endpoints, walking the original vertex cycle in order.
func splitAt(pts []geom.Point, i, j int) ([]geom.Point, []geom.Point) {
	n := len(pts)
	var a, b []geom.Point
	for k := i; ; k = (k + 1) % n {
		a = append(a, pts[k])
		if k == j {
			break
		}
	}
	for k := j; ; k = (k + 1) % n {
		b = append(b, pts[k])
		if k == i {
			break
		}
	}
	return a, b
}
