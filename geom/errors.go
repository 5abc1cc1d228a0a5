package geom

import "errors"

// Sentinel errors for geometry validation. Callers MUST use errors.Is to
// branch on these; they are never wrapped with formatted strings at the
// definition site.
var (
	// ErrTooFewVertices indicates a polygon has fewer than three vertices.
	ErrTooFewVertices = errors.New("geom: polygon has fewer than three vertices")

	// ErrNonFiniteCoordinate indicates a NaN or Inf coordinate was encountered.
	ErrNonFiniteCoordinate = errors.New("geom: non-finite coordinate")

	// ErrSelfIntersecting indicates a polygon's edges cross themselves.
	ErrSelfIntersecting = errors.New("geom: self-intersecting polygon")

	// ErrDegenerate indicates a polygon has zero area.
	ErrDegenerate = errors.New("geom: degenerate (zero-area) polygon")
)
