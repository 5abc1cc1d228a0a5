package nfp

import (
	"math"

	"github.com/polynest/nest2d/geom"
)

// refVertex returns the conventional NFP reference vertex of poly: the
// vertex with minimum Y, tie-broken by minimum X (spec 4.N).
func refVertex(poly geom.Polygon) geom.Point {
	best := poly.Points[0]
	for _, v := range poly.Points[1:] {
		if v.Y < best.Y-geom.Eps || (absf(v.Y-best.Y) <= geom.Eps && v.X < best.X) {
			best = v
		}
	}
	return best
}

// ReferenceVertex exports refVertex for callers outside this package (the
// placement worker needs it to turn an NFP-loop vertex into a translation
// vector for the part being placed).
func ReferenceVertex(poly geom.Polygon) geom.Point {
	return refVertex(poly)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// reorderFromBottom rotates pts so that its bottom-most (min Y, tie min X)
// point comes first, without changing winding order.
func reorderFromBottom(pts []geom.Point) []geom.Point {
	idx := 0
	for i, v := range pts {
		b := pts[idx]
		if v.Y < b.Y-geom.Eps || (absf(v.Y-b.Y) <= geom.Eps && v.X < b.X) {
			idx = i
		}
	}
	out := make([]geom.Point, len(pts))
	for i := range pts {
		out[i] = pts[(idx+i)%len(pts)]
	}
	return out
}

// minkowskiSumConvex computes the Minkowski sum A ⊕ B of two convex, CCW
// polygons by merging their edge vectors in increasing polar-angle order in
// a single O(|A|+|B|) sweep (spec 4.N convex fast path).
func minkowskiSumConvex(a, b geom.Polygon) geom.Polygon {
	pa := reorderFromBottom(geom.EnsureCCW(a).Points)
	pb := reorderFromBottom(geom.EnsureCCW(b).Points)
	na, nb := len(pa), len(pb)

	cur := pa[0].Add(pb[0])
	out := make([]geom.Point, 0, na+nb)
	out = append(out, cur)

	i, j := 0, 0
	for i < na || j < nb {
		var edge geom.Point
		switch {
		case i >= na:
			edge = pb[(j+1)%nb].Sub(pb[j%nb])
			j++
		case j >= nb:
			edge = pa[(i+1)%na].Sub(pa[i%na])
			i++
		default:
			ea := pa[(i+1)%na].Sub(pa[i])
			eb := pb[(j+1)%nb].Sub(pb[j])
			cross := ea.X*eb.Y - ea.Y*eb.X
			switch {
			case cross > geom.Eps:
				edge = ea
				i++
			case cross < -geom.Eps:
				edge = eb
				j++
			default:
				edge = ea.Add(eb)
				i++
				j++
			}
		}
		cur = cur.Add(edge)
		out = append(out, cur)
	}
	if len(out) > 1 && out[len(out)-1].AlmostEqual(out[0]) {
		out = out[:len(out)-1]
	}
	return geom.Polygon{Points: out}
}

// outerNFPConvex returns the outer NFP of convex A and convex B: the
// Minkowski sum of A and the point reflection of B about the origin,
// reported relative to ref (B's reference vertex — passed in explicitly
// rather than recomputed from b, since when B has been split into convex
// pieces by ConvexDecompose every piece must still be reported relative to
// the *whole* B's reference vertex for the pieces' NFPs to union correctly).
func outerNFPConvex(a, b geom.Polygon, ref geom.Point) geom.Polygon {
	negB := geom.Polygon{Points: make([]geom.Point, len(b.Points))}
	for i, v := range b.Points {
		negB.Points[i] = v.Neg()
	}
	sum := minkowskiSumConvex(a, negB)
	return geom.Translate(sum, ref)
}

// InnerFitConvex returns the locus of valid absolute positions for B's
// reference vertex such that B lies entirely inside convex polygon A, using
// the support-function erosion: for each edge of A with outward unit normal
// n and line offset d, the binding half-plane constraint on B's reference
// vertex c is dot(c,n) <= d - h(n), where h(n) = max_{p in B} dot(p-ref, n)
// is B's support relative to its own reference vertex. A need not be
// convex-decomposed here (that is the caller's job via decompose.go); A
// itself must already be convex. B may be any simple polygon.
//
// Returns an empty polygon (zero points) if B cannot fit inside A at all
// (the offset half-planes intersect to nothing, or invert).
func InnerFitConvex(a, b geom.Polygon) geom.Polygon {
	ccw := geom.EnsureCCW(a)
	n := len(ccw.Points)
	if n < 3 {
		return geom.Polygon{}
	}
	ref := refVertex(b)

	type offsetLine struct {
		origin geom.Point
		dir    geom.Point
	}
	lines := make([]offsetLine, n)
	for i := 0; i < n; i++ {
		p1 := ccw.Points[i]
		p2 := ccw.Points[(i+1)%n]
		e := p2.Sub(p1)
		elen := hypot(e)
		if elen < geom.Eps {
			return geom.Polygon{}
		}
		nrm := geom.Point{X: e.Y / elen, Y: -e.X / elen} // outward unit normal for CCW
		h := supportRelative(b, ref, nrm)
		origin := p1.Sub(geom.Point{X: nrm.X * h, Y: nrm.Y * h})
		lines[i] = offsetLine{origin: origin, dir: e}
	}

	verts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		prev := lines[(i-1+n)%n]
		cur := lines[i]
		v, ok := lineIntersect(prev.origin, prev.dir, cur.origin, cur.dir)
		if !ok {
			// Parallel consecutive edges (colinear boundary): fall back to
			// the current line's origin, which is exact when the edges
			// truly are collinear and only approximate otherwise.
			v = cur.origin
		}
		verts[i] = v
	}
	result := geom.Polygon{Points: verts}
	if geom.Area(result) <= geom.Eps {
		return geom.Polygon{}
	}
	// An inversion along both axes keeps the area positive, so also require
	// every result edge to run the same way as the edge of A it came from.
	for i := 0; i < n; i++ {
		edge := verts[(i+1)%n].Sub(verts[i])
		if edge.X*lines[i].dir.X+edge.Y*lines[i].dir.Y < -geom.Eps {
			return geom.Polygon{}
		}
	}
	return result
}

// supportRelative returns max_{p in poly.Points} dot(p-ref, dir).
func supportRelative(poly geom.Polygon, ref, dir geom.Point) float64 {
	best := dir.X*(poly.Points[0].X-ref.X) + dir.Y*(poly.Points[0].Y-ref.Y)
	for _, p := range poly.Points[1:] {
		v := dir.X*(p.X-ref.X) + dir.Y*(p.Y-ref.Y)
		if v > best {
			best = v
		}
	}
	return best
}

func hypot(p geom.Point) float64 {
	return math.Hypot(p.X, p.Y)
}

func lineIntersect(p1, d1, p2, d2 geom.Point) (geom.Point, bool) {
	denom := d1.X*d2.Y - d1.Y*d2.X
	if absf(denom) < geom.Eps {
		return geom.Point{}, false
	}
	t := ((p2.X-p1.X)*d2.Y - (p2.Y-p1.Y)*d2.X) / denom
	return geom.Point{X: p1.X + t*d1.X, Y: p1.Y + t*d1.Y}, true
}
