package ga_test

import (
	"context"
	"fmt"

	"github.com/polynest/nest2d/ga"
	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfpcache"
	"github.com/polynest/nest2d/part"
)

// ExampleDriver_Run evolves a small population of two squares against a
// square container and reports how many of them the best individual
// placed.
func ExampleDriver_Run() {
	containerPoly := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
	}}
	container := part.NewContainer("c", containerPoly)

	square := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	parts, err := part.NewParts([]geom.Polygon{square, square}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := ga.Options{PopulationSize: 4, MutationRatePct: 10, MaxGenerations: 5, Seed: 1}
	driver, err := ga.NewDriver(opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := driver.Run(context.Background(), container, parts, nfpcache.New(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(result.Placements), len(result.Unplaced))
	// Output: 2 0
}
