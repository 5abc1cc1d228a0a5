package placement_test

import (
	"context"
	"fmt"

	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfp"
	"github.com/polynest/nest2d/nfpcache"
	"github.com/polynest/nest2d/part"
	"github.com/polynest/nest2d/placement"
)

// ExampleEvaluate places two squares into a larger container and reports
// their positions plus the resulting bounding width.
func ExampleEvaluate() {
	containerPoly := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
	}}
	container := part.NewContainer("c", containerPoly)

	polys := []geom.Polygon{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}},
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}},
	}
	parts, err := part.NewParts(polys, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rps := make([]part.RotatedPart, len(parts))
	for i, p := range parts {
		rps[i], err = part.NewRotatedPart(p, 0)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	result := placement.Evaluate(context.Background(), container, rps, nfpcache.New(), nfp.Options{})
	fmt.Println(len(result.Placements), len(result.Unplaced))
	// Output: 2 0
}
