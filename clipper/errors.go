package clipper

import "errors"

var (
	// ErrInfeasible indicates the requested offset/union/difference could
	// not be computed: either float-to-integer scaling would overflow, or
	// the operation produced an empty result where the caller required a
	// non-empty one.
	ErrInfeasible = errors.New("clipper: infeasible operation")

	// ErrEmptyInput indicates zero polygons were supplied to an operation
	// that requires at least one.
	ErrEmptyInput = errors.New("clipper: no input polygons")
)
