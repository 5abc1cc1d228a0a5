package part

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/polynest/nest2d/geom"
)

// StableID derives a deterministic identifier for poly at list position idx:
// a content fingerprint (so identical parts hash identically) combined with
// a running occurrence counter (so repeated identical parts in the input
// multiset still get distinct, reproducible IDs). occurrence is the number
// of prior polygons in the same run that fingerprinted identically to poly.
func StableID(poly geom.Polygon, occurrence int) string {
	return fmt.Sprintf("p%s-%d", fingerprint(poly), occurrence)
}

// fingerprint hashes poly's vertex coordinates, rounded to a coarse grid so
// that floating-point noise below curve_tolerance does not change identity.
func fingerprint(poly geom.Polygon) string {
	h := fnv.New64a()
	for _, v := range poly.Points {
		fmt.Fprintf(h, "%d:%d;", round(v.X), round(v.Y))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

const fingerprintGrid = 1e6 // 1e-6 world-unit grid for identity purposes

func round(x float64) int64 {
	return int64(math.Round(x * fingerprintGrid))
}
