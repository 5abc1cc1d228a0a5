package nfp_test

import (
	"fmt"

	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfp"
)

// ExampleOuterNFP computes the outer no-fit-polygon of two axis-aligned
// squares: the locus where B's reference vertex may touch A's boundary
// without overlapping it.
func ExampleOuterNFP() {
	a := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	b := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5},
	}}
	res := nfp.OuterNFP(a, b, nfp.Options{})
	bounds := geom.BoundsOf(res.Loops[0])
	fmt.Println(res.Outcome, bounds.MinX, bounds.MaxX)
	// Output: 0 -5 10
}

// ExampleInnerNFP computes where a small part's reference vertex may land
// while remaining fully inside a container.
func ExampleInnerNFP() {
	container := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
	}}
	part := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	res := nfp.InnerNFP(container, part, nfp.Options{})
	bounds := geom.BoundsOf(res.Loops[0])
	fmt.Println(res.Outcome, bounds.MinX, bounds.MaxX)
	// Output: 0 0 90
}
