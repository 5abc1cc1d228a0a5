package part

import "github.com/polynest/nest2d/geom"

// NewParts validates and wraps a raw polygon multiset into stably-identified
// Parts with the given rotation-set size. Validation failures (fewer than
// three vertices, non-finite coordinates, self-intersection) surface
// immediately as geom sentinel errors, satisfying spec's InvalidInput
// policy: "surfaces before any GA work".
//
// Complexity: O(n) polygons times O(v^2) per-polygon self-intersection
// check (v = vertices), dominated by geom.Validate.
func NewParts(polys []geom.Polygon, rotations int) ([]*Part, error) {
	if len(polys) == 0 {
		return nil, ErrEmptyPartsList
	}
	seen := make(map[string]int, len(polys))
	out := make([]*Part, len(polys))
	allowed := AllowedRotations(rotations)
	for i, poly := range polys {
		if err := geom.Validate(poly); err != nil {
			return nil, err
		}
		fp := fingerprint(poly)
		occurrence := seen[fp]
		seen[fp] = occurrence + 1
		id := StableID(poly, occurrence)
		polyWithID := poly
		polyWithID.ID = id
		out[i] = &Part{
			ID:        id,
			Index:     i,
			Polygon:   polyWithID,
			Area:      geom.AbsArea(poly),
			Bounds:    geom.BoundsOf(poly),
			Rotations: allowed,
		}
	}
	return out, nil
}

// NewRotatedPart rotates p by its RotationID-th allowed angle and caches the
// result. Returns ErrInvalidRotationIndex if rotationID is out of range.
func NewRotatedPart(p *Part, rotationID int) (RotatedPart, error) {
	if rotationID < 0 || rotationID >= len(p.Rotations) {
		return RotatedPart{}, ErrInvalidRotationIndex
	}
	theta := p.Rotations[rotationID]
	rotated := geom.Rotate(p.Polygon, theta)
	rotated.ID = p.ID
	return RotatedPart{
		PartID:     p.ID,
		PartIndex:  p.Index,
		RotationID: rotationID,
		Rotation:   theta,
		Polygon:    rotated,
		Bounds:     geom.BoundsOf(rotated),
		Area:       p.Area,
	}, nil
}

// NewContainer normalizes poly's bounds to the origin and, if its height
// exceeds its width, rotates it 90 degrees so the long axis runs along X
// (spec 4.P: "containers are normalised with their long axis along x before
// placement").
func NewContainer(id string, poly geom.Polygon) Container {
	working := poly
	working.ID = id
	b := geom.BoundsOf(working)
	rotated := false
	if b.Height() > b.Width() {
		working = geom.Rotate(working, 90)
		working.ID = id
		b = geom.BoundsOf(working)
		rotated = true
	}
	working = geom.Translate(working, geom.Point{X: -b.MinX, Y: -b.MinY})
	working.ID = id
	return Container{
		ID:      id,
		Polygon: working,
		Bounds:  geom.BoundsOf(working),
		Rotated: rotated,
	}
}
