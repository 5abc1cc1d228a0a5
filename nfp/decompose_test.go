package nfp_test

import (
	"testing"

	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfp"
	"github.com/stretchr/testify/require"
)

func TestConvexDecomposeConvexIsNoop(t *testing.T) {
	pieces := nfp.ConvexDecompose(square(10))
	require.Len(t, pieces, 1)
}

func TestConvexDecomposeLShapeYieldsConvexPieces(t *testing.T) {
	pieces := nfp.ConvexDecompose(lshape())
	require.Greater(t, len(pieces), 1)
	var total float64
	for _, p := range pieces {
		require.True(t, geom.IsConvex(p))
		total += geom.AbsArea(p)
	}
	require.InDelta(t, geom.AbsArea(lshape()), total, 1e-6, "decomposition must exactly partition the original area")
}
