package nfp

import "errors"

var (
	// ErrInvalidPolygon indicates an input polygon had fewer than three
	// vertices or failed basic validation before NFP computation began.
	ErrInvalidPolygon = errors.New("nfp: invalid input polygon")
)
