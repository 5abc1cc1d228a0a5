package clipper_test

import (
	"testing"

	"github.com/polynest/nest2d/clipper"
	"github.com/polynest/nest2d/geom"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.Polygon{ID: "sq", Points: []geom.Point{
		{0, 0}, {side, 0}, {side, side}, {0, side},
	}}
}

func TestOffsetOutward(t *testing.T) {
	s := square(10)
	out, err := clipper.Offset(s, 1)
	require.NoError(t, err)
	b := geom.BoundsOf(out)
	require.InDelta(t, -1, b.MinX, 1e-2)
	require.InDelta(t, 11, b.MaxX, 1e-2)
}

func TestOffsetInward(t *testing.T) {
	s := square(10)
	in, err := clipper.Offset(s, -2)
	require.NoError(t, err)
	b := geom.BoundsOf(in)
	require.InDelta(t, 2, b.MinX, 1e-2)
	require.InDelta(t, 8, b.MaxX, 1e-2)
}

func TestOffsetZeroIsNoop(t *testing.T) {
	s := square(10)
	out, err := clipper.Offset(s, 0)
	require.NoError(t, err)
	require.Equal(t, s, out)
}

func TestUnionDisjointKeepsBothLoops(t *testing.T) {
	a := square(5)
	b := geom.Translate(square(5), geom.Point{X: 20, Y: 0})
	result, err := clipper.Union([]geom.Polygon{a, b})
	require.NoError(t, err)
	require.Len(t, result, 2)
}

func TestUnionEmptyInput(t *testing.T) {
	_, err := clipper.Union(nil)
	require.ErrorIs(t, err, clipper.ErrEmptyInput)
}

func TestDifferenceFullyCovered(t *testing.T) {
	subject := square(5)
	coveringClip := square(20)
	result, err := clipper.Difference([]geom.Polygon{subject}, []geom.Polygon{coveringClip})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestDifferenceNoClip(t *testing.T) {
	subject := square(5)
	result, err := clipper.Difference([]geom.Polygon{subject}, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
}
