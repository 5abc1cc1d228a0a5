package geom_test

import (
	"testing"

	"github.com/polynest/nest2d/geom"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{0, 0}, {side, 0}, {side, side}, {0, side},
	}}
}

func TestAreaCCW(t *testing.T) {
	s := square(10)
	require.InDelta(t, 100.0, geom.Area(s), 1e-9)
}

func TestAreaCW(t *testing.T) {
	s := geom.Reverse(square(10))
	require.InDelta(t, -100.0, geom.Area(s), 1e-9)
}

func TestCentroidSquare(t *testing.T) {
	c := geom.Centroid(square(10))
	require.InDelta(t, 5.0, c.X, 1e-9)
	require.InDelta(t, 5.0, c.Y, 1e-9)
}

func TestBoundsOf(t *testing.T) {
	b := geom.BoundsOf(square(10))
	require.Equal(t, geom.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, b)
}

func TestRotationClosure(t *testing.T) {
	s := square(10)
	for _, theta := range []float64{0, 90, 45, 137.5, 360} {
		r := geom.Rotate(geom.Rotate(s, theta), -theta)
		for i, v := range r.Points {
			require.InDelta(t, s.Points[i].X, v.X, 1e-7)
			require.InDelta(t, s.Points[i].Y, v.Y, 1e-7)
		}
	}
}

func TestTranslate(t *testing.T) {
	s := geom.Translate(square(10), geom.Point{X: 5, Y: -3})
	require.Equal(t, geom.Point{X: 5, Y: -3}, s.Points[0])
}

func TestPointInPolygon(t *testing.T) {
	s := square(10)
	require.True(t, geom.PointInPolygon(geom.Point{X: 5, Y: 5}, s))
	require.True(t, geom.PointInPolygon(geom.Point{X: 0, Y: 5}, s), "on-edge counts as inside")
	require.False(t, geom.PointInPolygon(geom.Point{X: 15, Y: 5}, s))
}

func TestSegmentsIntersect(t *testing.T) {
	require.True(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10},
		geom.Point{X: 0, Y: 10}, geom.Point{X: 10, Y: 0},
	))
	require.False(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: 0, Y: 5}, geom.Point{X: 1, Y: 5},
	))
}

func TestIntersectsEnclosure(t *testing.T) {
	outer := square(10)
	inner := geom.Translate(square(2), geom.Point{X: 4, Y: 4})
	require.True(t, geom.Intersects(outer, inner), "fully enclosed polygon must be detected")
}

func TestIntersectsDisjoint(t *testing.T) {
	a := square(10)
	b := geom.Translate(square(10), geom.Point{X: 20, Y: 0})
	require.False(t, geom.Intersects(a, b))
}

func TestValidateTooFewVertices(t *testing.T) {
	p := geom.Polygon{Points: []geom.Point{{0, 0}, {1, 0}}}
	require.ErrorIs(t, geom.Validate(p), geom.ErrTooFewVertices)
}

func TestValidateSelfIntersecting(t *testing.T) {
	bowtie := geom.Polygon{Points: []geom.Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}}
	require.ErrorIs(t, geom.Validate(bowtie), geom.ErrSelfIntersecting)
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, geom.Validate(square(10)))
}

func TestIsConvex(t *testing.T) {
	require.True(t, geom.IsConvex(square(10)))
	lshape := geom.Polygon{Points: []geom.Point{
		{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10},
	}}
	require.False(t, geom.IsConvex(lshape))
}

func TestDedupRemovesCloseVertices(t *testing.T) {
	p := geom.Polygon{Points: []geom.Point{
		{0, 0}, {0, 1e-12}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}}
	d := geom.Dedup(p, geom.Eps)
	require.Len(t, d.Points, 4)
}
