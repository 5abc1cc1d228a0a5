package part

import "github.com/polynest/nest2d/geom"

// Part is an identified polygon plus its area, bounds, and the set of
// rotation angles (degrees) it is allowed to take, derived from the
// `rotations` config option: angle[k] = k*360/len(Rotations).
type Part struct {
	ID        string
	Index     int // position in the orchestrator's stable part list
	Polygon   geom.Polygon
	Area      float64
	Bounds    geom.Bounds
	Rotations []float64 // allowed rotation angles in degrees, ascending from 0
}

// RotatedPart is a Part fixed at one of its allowed rotations, with the
// rotated polygon, bounds, and area cached so hot-loop code (placement,
// repeated NFP lookups) never recomputes them.
type RotatedPart struct {
	PartID     string
	PartIndex  int
	RotationID int // index into Part.Rotations
	Rotation   float64
	Polygon    geom.Polygon
	Bounds     geom.Bounds
	Area       float64
}

// Container is a Polygon normalized so its bounding min-corner sits at the
// origin and its long axis runs along X, per spec section 4.P's fitness
// rationale ("containers are normalised with their long axis along x").
type Container struct {
	ID      string
	Polygon geom.Polygon
	Bounds  geom.Bounds
	// Rotated reports whether the container was rotated 90 degrees during
	// normalization (height was the long axis in the input).
	Rotated bool
}

// AllowedRotations returns the k*360/rotations angle set for rotations >= 1.
func AllowedRotations(rotations int) []float64 {
	if rotations < 1 {
		rotations = 1
	}
	out := make([]float64, rotations)
	for k := 0; k < rotations; k++ {
		out[k] = float64(k) * 360 / float64(rotations)
	}
	return out
}
