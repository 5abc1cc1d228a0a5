package placement

import (
	"context"

	"github.com/polynest/nest2d/clipper"
	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfp"
	"github.com/polynest/nest2d/nfpcache"
	"github.com/polynest/nest2d/part"
)

// Placement records where one part ended up: the translation (Dx, Dy)
// applied to the part's own reference vertex, at the rotation it was
// evaluated at.
type Placement struct {
	PartID     string
	PartIndex  int
	RotationID int
	Rotation   float64
	Dx, Dy     float64
}

// Result is everything one individual's evaluation produces.
type Result struct {
	Placements    []Placement
	Unplaced      []part.RotatedPart
	BoundingWidth float64
	Fitness       float64
}

// placed tracks a part already committed to the layout: localPolygon is the
// rotated part's own geometry before translation (so outer-NFP cache keys,
// which only vary by part identity and rotation, stay valid regardless of
// where this placement ended up), and translation is where it was placed.
type placed struct {
	id          string
	rotationID  int
	localPolygon geom.Polygon
	translation geom.Point
	bounds      geom.Bounds
}

// Evaluate runs the greedy placement algorithm of spec 4.P for one
// individual: parts is the order to attempt, already fixed at their chosen
// rotation. container must already be offset inward by spacing/2 and parts
// offset outward by spacing/2 by the caller, so plain non-overlap here
// implies the configured clearance.
//
// Evaluate is deterministic: given the same container, parts slice and
// cache contents, it returns bit-identical placements regardless of what
// else is running concurrently against the same cache.
func Evaluate(ctx context.Context, container part.Container, parts []part.RotatedPart, cache *nfpcache.Cache, opts nfp.Options) Result {
	var result Result
	var placedSoFar []placed
	overall := geom.Bounds{}
	haveOverall := false

	for _, rp := range parts {
		if ctx.Err() != nil {
			result.Unplaced = append(result.Unplaced, rp)
			continue
		}

		innerKey := nfp.Key{AID: container.ID, BID: rp.PartID, ARotation: 0, BRotation: rp.RotationID, Inside: true}
		inner := cache.Get(innerKey, func() nfp.Result {
			return nfp.InnerNFP(container.Polygon, rp.Polygon, opts)
		})
		if inner.Outcome != nfp.Ok || len(inner.Loops) == 0 {
			result.Unplaced = append(result.Unplaced, rp)
			continue
		}

		forbidden := forbiddenRegion(placedSoFar, rp, cache, opts)
		remaining := inner.Loops
		if len(forbidden) > 0 {
			diffed, err := clipper.Difference(inner.Loops, forbidden)
			if err != nil || len(diffed) == 0 {
				result.Unplaced = append(result.Unplaced, rp)
				continue
			}
			remaining = diffed
		}

		ref := nfp.ReferenceVertex(rp.Polygon)
		cand, bounds, ok := bestCandidate(remaining, rp, ref, overall, haveOverall)
		if !ok {
			result.Unplaced = append(result.Unplaced, rp)
			continue
		}

		translation := geom.Point{X: cand.X - ref.X, Y: cand.Y - ref.Y}
		finalPoly := geom.Translate(rp.Polygon, translation)

		result.Placements = append(result.Placements, Placement{
			PartID:     rp.PartID,
			PartIndex:  rp.PartIndex,
			RotationID: rp.RotationID,
			Rotation:   rp.Rotation,
			Dx:         translation.X,
			Dy:         translation.Y,
		})
		placedSoFar = append(placedSoFar, placed{
			id: rp.PartID, rotationID: rp.RotationID,
			localPolygon: rp.Polygon, translation: translation,
			bounds: geom.BoundsOf(finalPoly),
		})
		overall = bounds
		haveOverall = true
		result.BoundingWidth = overall.Width()
	}

	result.Fitness = computeFitness(result.BoundingWidth, result.Unplaced)
	return result
}

// forbiddenRegion unions the outer NFP of every already-placed part against
// rp, each translated to that part's actual placement, per spec 4.P step b.
func forbiddenRegion(placedSoFar []placed, rp part.RotatedPart, cache *nfpcache.Cache, opts nfp.Options) []geom.Polygon {
	if len(placedSoFar) == 0 {
		return nil
	}
	loops := make([]geom.Polygon, 0, len(placedSoFar))
	for _, q := range placedSoFar {
		key := nfp.Key{AID: q.id, BID: rp.PartID, ARotation: q.rotationID, BRotation: rp.RotationID, Inside: false}
		res := cache.Get(key, func() nfp.Result {
			return nfp.OuterNFP(q.localPolygon, rp.Polygon, opts)
		})
		if res.Outcome != nfp.Ok {
			continue
		}
		for _, l := range res.Loops {
			if len(l.Points) >= 3 {
				loops = append(loops, geom.Translate(l, q.translation))
			}
		}
	}
	if len(loops) == 0 {
		return nil
	}
	if len(loops) == 1 {
		return loops
	}
	merged, err := clipper.Union(loops)
	if err != nil {
		return loops
	}
	return merged
}

// bestCandidate picks, among every vertex of remaining's loops, the one
// minimizing the resulting overall bounding-box width (primary), tie-broken
// by the candidate vertex's x then y (spec 4.P step d).
func bestCandidate(remaining []geom.Polygon, rp part.RotatedPart, ref geom.Point, overall geom.Bounds, haveOverall bool) (geom.Point, geom.Bounds, bool) {
	var (
		bestPoint  geom.Point
		bestBounds geom.Bounds
		bestWidth  float64
		found      bool
	)

	for _, loop := range remaining {
		for _, v := range loop.Points {
			translation := geom.Point{X: v.X - ref.X, Y: v.Y - ref.Y}
			b := partBounds(rp.Bounds, translation)
			combined := b
			if haveOverall {
				combined = unionBounds(overall, b)
			}
			width := combined.Width()

			switch {
			case !found:
				bestPoint, bestBounds, bestWidth, found = v, combined, width, true
			case width < bestWidth-geom.Eps:
				bestPoint, bestBounds, bestWidth = v, combined, width
			case width <= bestWidth+geom.Eps:
				if v.X < bestPoint.X-geom.Eps || (absf(v.X-bestPoint.X) <= geom.Eps && v.Y < bestPoint.Y-geom.Eps) {
					bestPoint, bestBounds, bestWidth = v, combined, width
				}
			}
		}
	}
	return bestPoint, bestBounds, found
}

// partBounds returns rp's own (untranslated) bounds shifted by translation,
// without rebuilding the rotated polygon just to measure its box.
func partBounds(b geom.Bounds, translation geom.Point) geom.Bounds {
	return geom.Bounds{
		MinX: b.MinX + translation.X,
		MinY: b.MinY + translation.Y,
		MaxX: b.MaxX + translation.X,
		MaxY: b.MaxY + translation.Y,
	}
}

func unionBounds(a, b geom.Bounds) geom.Bounds {
	return geom.Bounds{
		MinX: minf(a.MinX, b.MinX),
		MinY: minf(a.MinY, b.MinY),
		MaxX: maxf(a.MaxX, b.MaxX),
		MaxY: maxf(a.MaxY, b.MaxY),
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
