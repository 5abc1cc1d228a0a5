package placement

import "github.com/polynest/nest2d/part"

// computeFitness implements spec 4.P's fitness formula: lower is better.
// The bounding-width term rewards compaction along the container's x-axis;
// the unplaced-area penalty dominates whenever any part fails to fit, which
// also covers the Infeasible case (spec section 7): every individual's
// fitness equals the total part area when nothing placed.
func computeFitness(boundingWidth float64, unplaced []part.RotatedPart) float64 {
	var penalty float64
	for _, rp := range unplaced {
		penalty += rp.Area
	}
	return 2*boundingWidth + penalty
}
