package clipper_test

import (
	"fmt"

	"github.com/polynest/nest2d/clipper"
	"github.com/polynest/nest2d/geom"
)

// ExampleOffset inflates a square outward by 1 unit, growing its bounds
// symmetrically on every side.
func ExampleOffset() {
	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	grown, err := clipper.Offset(square, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b := geom.BoundsOf(grown)
	fmt.Printf("minX=%.0f maxX=%.0f\n", b.MinX, b.MaxX)
	// Output: minX=-1 maxX=11
}

// ExampleUnion merges two overlapping squares into a single outline.
func ExampleUnion() {
	a := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	b := geom.Polygon{Points: []geom.Point{
		{X: 5, Y: 0}, {X: 15, Y: 0}, {X: 15, Y: 10}, {X: 5, Y: 10},
	}}
	merged, err := clipper.Union([]geom.Polygon{a, b})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(merged))
	bounds := geom.BoundsOf(merged[0])
	fmt.Printf("minX=%.0f maxX=%.0f\n", bounds.MinX, bounds.MaxX)
	// Output:
	// 1
	// minX=0 maxX=15
}
