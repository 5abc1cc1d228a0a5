package placement_test

import (
	"context"
	"testing"

	"github.com/polynest/nest2d/clipper"
	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfp"
	"github.com/polynest/nest2d/nfpcache"
	"github.com/polynest/nest2d/part"
	"github.com/polynest/nest2d/placement"
	"github.com/stretchr/testify/require"
)

func squarePoly(side float64) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
	}}
}

func rotatedParts(t *testing.T, polys []geom.Polygon, rotations int) []part.RotatedPart {
	t.Helper()
	parts, err := part.NewParts(polys, rotations)
	require.NoError(t, err)
	out := make([]part.RotatedPart, len(parts))
	for i, p := range parts {
		rp, err := part.NewRotatedPart(p, 0)
		require.NoError(t, err)
		out[i] = rp
	}
	return out
}

func TestEvaluateS1SingleSquareFits(t *testing.T) {
	container := part.NewContainer("c", squarePoly(100))
	parts := rotatedParts(t, []geom.Polygon{squarePoly(10)}, 1)

	res := placement.Evaluate(context.Background(), container, parts, nfpcache.New(), nfp.Options{})

	require.Len(t, res.Placements, 1)
	require.Empty(t, res.Unplaced)
	require.InDelta(t, 0, res.Placements[0].Dx, 1e-6)
	require.InDelta(t, 0, res.Placements[0].Dy, 1e-6)
	require.InDelta(t, 10, res.BoundingWidth, 1e-6)
	require.InDelta(t, 20, res.Fitness, 1e-6)
}

func TestEvaluateS2TwoSquaresTile(t *testing.T) {
	container := part.NewContainer("c", squarePoly(100))
	parts := rotatedParts(t, []geom.Polygon{squarePoly(50), squarePoly(50)}, 1)

	res := placement.Evaluate(context.Background(), container, parts, nfpcache.New(), nfp.Options{})

	require.Len(t, res.Placements, 2)
	require.Empty(t, res.Unplaced)
	require.InDelta(t, 100, res.BoundingWidth, 1e-6)
	require.InDelta(t, 200, res.Fitness, 1e-6)

	require.InDelta(t, 0, res.Placements[0].Dx, 1e-6)
	require.InDelta(t, 0, res.Placements[0].Dy, 1e-6)
	require.InDelta(t, 50, res.Placements[1].Dx, 1e-6)
	require.InDelta(t, 0, res.Placements[1].Dy, 1e-6)
}

func TestEvaluateS3OversizePartUnplaced(t *testing.T) {
	container := part.NewContainer("c", squarePoly(100))
	parts := rotatedParts(t, []geom.Polygon{squarePoly(200)}, 1)

	res := placement.Evaluate(context.Background(), container, parts, nfpcache.New(), nfp.Options{})

	require.Empty(t, res.Placements)
	require.Len(t, res.Unplaced, 1)
	require.InDelta(t, 40000, res.Fitness, 1e-6)
}

func TestEvaluateS4SpacingRespected(t *testing.T) {
	const spacing = 5.0
	container := part.NewContainer("c", squarePoly(100))
	offsetContainer, err := clipper.Offset(container.Polygon, -spacing/2)
	require.NoError(t, err)
	container.Polygon = offsetContainer
	container.Bounds = geom.BoundsOf(offsetContainer)

	raw := rotatedParts(t, []geom.Polygon{squarePoly(40), squarePoly(40)}, 1)
	offsetParts := make([]part.RotatedPart, len(raw))
	for i, rp := range raw {
		op, err := clipper.Offset(rp.Polygon, spacing/2)
		require.NoError(t, err)
		rp.Polygon = op
		rp.Bounds = geom.BoundsOf(op)
		rp.Area = geom.AbsArea(op)
		offsetParts[i] = rp
	}

	res := placement.Evaluate(context.Background(), container, offsetParts, nfpcache.New(), nfp.Options{})

	require.Len(t, res.Placements, 2)
	require.Empty(t, res.Unplaced)

	p0 := geom.Translate(offsetParts[0].Polygon, geom.Point{X: res.Placements[0].Dx, Y: res.Placements[0].Dy})
	p1 := geom.Translate(offsetParts[1].Polygon, geom.Point{X: res.Placements[1].Dx, Y: res.Placements[1].Dy})
	// The offset outlines may touch (that contact is exactly the configured
	// clearance) but must share no interior area: removing p0 from p1 must
	// leave all of p1.
	rest, err := clipper.Difference([]geom.Polygon{p1}, []geom.Polygon{p0})
	require.NoError(t, err)
	var restArea float64
	for _, r := range rest {
		restArea += geom.AbsArea(r)
	}
	require.InDelta(t, geom.AbsArea(p1), restArea, 1e-6, "spacing-offset parts must not overlap once placed")
}

func TestEvaluateS6Determinism(t *testing.T) {
	run := func() placement.Result {
		container := part.NewContainer("c", squarePoly(100))
		parts := rotatedParts(t, []geom.Polygon{squarePoly(50), squarePoly(50)}, 1)
		return placement.Evaluate(context.Background(), container, parts, nfpcache.New(), nfp.Options{})
	}

	first := run()
	second := run()
	require.Equal(t, first.Placements, second.Placements)
	require.Equal(t, first.Fitness, second.Fitness)
}
