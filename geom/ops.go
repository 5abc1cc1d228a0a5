package geom

import "math"

// Area returns the signed area of p (shoelace formula). Positive means CCW
// winding, negative means CW. Complexity: O(n).
func Area(p Polygon) float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// AbsArea returns the unsigned area of p.
func AbsArea(p Polygon) float64 { return absf(Area(p)) }

// Centroid returns the signed-area-weighted centroid of p. Callers should
// check Area(p) != 0 first; a degenerate polygon yields the vertex mean.
func Centroid(p Polygon) Point {
	n := len(p.Points)
	if n == 0 {
		return Point{}
	}
	a := Area(p)
	if absf(a) < Eps {
		var sx, sy float64
		for _, v := range p.Points {
			sx += v.X
			sy += v.Y
		}
		return Point{sx / float64(n), sy / float64(n)}
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		p0 := p.Points[i]
		p1 := p.Points[(i+1)%n]
		cross := p0.X*p1.Y - p1.X*p0.Y
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	factor := 1 / (6 * a)
	return Point{cx * factor, cy * factor}
}

// BoundsOf returns the axis-aligned bounding box of p. Children are
// included, since a hole's extent never exceeds its solid's but a caller
// who passes an isolated hole still gets a correct box.
func BoundsOf(p Polygon) Bounds {
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	accumulate(p, &b)
	return b
}

func accumulate(p Polygon, b *Bounds) {
	for _, v := range p.Points {
		if v.X < b.MinX {
			b.MinX = v.X
		}
		if v.X > b.MaxX {
			b.MaxX = v.X
		}
		if v.Y < b.MinY {
			b.MinY = v.Y
		}
		if v.Y > b.MaxY {
			b.MaxY = v.Y
		}
	}
	for _, c := range p.Children {
		accumulate(c, b)
	}
}

// Rotate returns a copy of p with every vertex (and every child, recursively)
// rotated by thetaDeg degrees counter-clockwise around the origin.
func Rotate(p Polygon, thetaDeg float64) Polygon {
	if thetaDeg == 0 {
		return clonePolygon(p)
	}
	rad := thetaDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return mapPolygon(p, func(v Point) Point {
		return Point{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
	})
}

// Translate returns a copy of p with every vertex shifted by d.
func Translate(p Polygon, d Point) Polygon {
	if d.X == 0 && d.Y == 0 {
		return clonePolygon(p)
	}
	return mapPolygon(p, func(v Point) Point { return v.Add(d) })
}

func mapPolygon(p Polygon, f func(Point) Point) Polygon {
	out := Polygon{ID: p.ID, Points: make([]Point, len(p.Points))}
	for i, v := range p.Points {
		out.Points[i] = f(v)
	}
	if len(p.Children) > 0 {
		out.Children = make([]Polygon, len(p.Children))
		for i, c := range p.Children {
			out.Children[i] = mapPolygon(c, f)
		}
	}
	return out
}

func clonePolygon(p Polygon) Polygon {
	out := Polygon{ID: p.ID, Points: append([]Point(nil), p.Points...)}
	if len(p.Children) > 0 {
		out.Children = make([]Polygon, len(p.Children))
		for i, c := range p.Children {
			out.Children[i] = clonePolygon(c)
		}
	}
	return out
}

// PointInPolygon reports whether pt lies inside poly using a ray-casting
// test with the convention that a point exactly on an edge counts as
// inside. Holes (Children) are not consulted here; callers that need
// hole-aware containment should test children explicitly.
func PointInPolygon(pt Point, poly Polygon) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	if onBoundary(pt, poly) {
		return true
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly.Points[i], poly.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xIntersect := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func onBoundary(pt Point, poly Polygon) bool {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]
		if onSegment(pt, a, b) {
			return true
		}
	}
	return false
}

// onSegment reports whether pt lies on the closed segment [a,b] within Eps.
func onSegment(pt, a, b Point) bool {
	cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
	if absf(cross) > Eps*maxf(1, hypot(a, b)) {
		return false
	}
	dot := (pt.X-a.X)*(b.X-a.X) + (pt.Y-a.Y)*(b.Y-a.Y)
	if dot < -Eps {
		return false
	}
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= lenSq+Eps
}

func hypot(a, b Point) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SegmentsIntersect reports whether closed segments [p1,p2] and [p3,p4]
// share any point: a proper crossing, an endpoint touching the other
// segment, or a collinear overlap.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross3(p3, p4, p1)
	d2 := cross3(p3, p4, p2)
	d3 := cross3(p1, p2, p3)
	d4 := cross3(p1, p2, p4)

	if ((d1 > Eps && d2 < -Eps) || (d1 < -Eps && d2 > Eps)) &&
		((d3 > Eps && d4 < -Eps) || (d3 < -Eps && d4 > Eps)) {
		return true
	}
	if absf(d1) <= Eps && onSegment(p1, p3, p4) {
		return true
	}
	if absf(d2) <= Eps && onSegment(p2, p3, p4) {
		return true
	}
	if absf(d3) <= Eps && onSegment(p3, p1, p2) {
		return true
	}
	if absf(d4) <= Eps && onSegment(p4, p1, p2) {
		return true
	}
	return false
}

func cross3(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Intersects reports whether simple polygons a and b share any point: either
// an edge of a meets an edge of b (touching boundaries count, see
// SegmentsIntersect), or one polygon fully encloses the other (caught by a
// vertex-containment check when no edges meet). Complexity: O(|a|*|b|).
func Intersects(a, b Polygon) bool {
	na, nb := len(a.Points), len(b.Points)
	if na < 3 || nb < 3 {
		return false
	}
	for i := 0; i < na; i++ {
		a1, a2 := a.Points[i], a.Points[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1, b2 := b.Points[j], b.Points[(j+1)%nb]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	// No edge crossings: either disjoint or one fully encloses the other.
	if PointInPolygon(a.Points[0], b) {
		return true
	}
	if PointInPolygon(b.Points[0], a) {
		return true
	}
	return false
}

// Validate checks the structural invariants every input polygon must
// satisfy: at least three vertices, finite coordinates, and no
// self-intersection among non-adjacent edges.
func Validate(p Polygon) error {
	n := len(p.Points)
	if n < 3 {
		return ErrTooFewVertices
	}
	for _, v := range p.Points {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return ErrNonFiniteCoordinate
		}
	}
	for i := 0; i < n; i++ {
		a1, a2 := p.Points[i], p.Points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || i == (j+1)%n {
				continue
			}
			b1, b2 := p.Points[j], p.Points[(j+1)%n]
			if segmentsCrossStrict(a1, a2, b1, b2) {
				return ErrSelfIntersecting
			}
		}
	}
	if absf(Area(p)) < Eps {
		return ErrDegenerate
	}
	return nil
}

// segmentsCrossStrict ignores shared-endpoint touches (adjacent edges always
// share one) and only reports a true transversal crossing.
func segmentsCrossStrict(p1, p2, p3, p4 Point) bool {
	d1 := cross3(p3, p4, p1)
	d2 := cross3(p3, p4, p2)
	d3 := cross3(p1, p2, p3)
	d4 := cross3(p1, p2, p4)
	return ((d1 > Eps && d2 < -Eps) || (d1 < -Eps && d2 > Eps)) &&
		((d3 > Eps && d4 < -Eps) || (d3 < -Eps && d4 > Eps))
}

// Dedup removes consecutive vertices closer than tol and drops the closing
// vertex if it coincides with the first, returning a normalized open
// polygon. It does not change winding.
func Dedup(p Polygon, tol float64) Polygon {
	if tol <= 0 {
		tol = Eps
	}
	n := len(p.Points)
	if n == 0 {
		return Polygon{ID: p.ID}
	}
	out := make([]Point, 0, n)
	out = append(out, p.Points[0])
	for i := 1; i < n; i++ {
		last := out[len(out)-1]
		if math.Hypot(p.Points[i].X-last.X, p.Points[i].Y-last.Y) > tol {
			out = append(out, p.Points[i])
		}
	}
	for len(out) > 1 && math.Hypot(out[0].X-out[len(out)-1].X, out[0].Y-out[len(out)-1].Y) <= tol {
		out = out[:len(out)-1]
	}
	return Polygon{ID: p.ID, Points: out}
}

// EnsureCCW returns p reoriented to counter-clockwise winding if it is
// currently CW; otherwise returns p unchanged (cloned).
func EnsureCCW(p Polygon) Polygon {
	if Area(p) >= 0 {
		return clonePolygon(p)
	}
	return Reverse(p)
}

// Reverse returns p with its vertex order reversed (flips winding).
func Reverse(p Polygon) Polygon {
	n := len(p.Points)
	out := Polygon{ID: p.ID, Points: make([]Point, n), Children: p.Children}
	for i := 0; i < n; i++ {
		out.Points[i] = p.Points[n-1-i]
	}
	return out
}

// IsConvex reports whether p is a convex polygon: every turn has the same
// sign of cross product as the polygon's overall winding.
func IsConvex(p Polygon) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var sign float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		cr := cross3(a, b, c)
		if absf(cr) < Eps {
			continue
		}
		if sign == 0 {
			sign = cr
		} else if (sign > 0) != (cr > 0) {
			return false
		}
	}
	return true
}
