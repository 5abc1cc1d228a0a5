package ga

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfp"
	"github.com/polynest/nest2d/nfpcache"
	"github.com/polynest/nest2d/part"
	"github.com/polynest/nest2d/placement"
)

// ProgressFunc is called once per completed generation with the generation
// index, the best fitness observed so far, and the utilization (placed area
// / container area) of the best individual's placement.
type ProgressFunc func(gen int, bestFitness, utilization float64)

// Result is the best solution found across every generation of one run,
// per spec 4.A: "Best placement is the lowest-fitness record ever observed
// across all generations."
type Result struct {
	Placements  []placement.Placement
	Unplaced    []part.RotatedPart
	Fitness     float64
	Generations int
	Cancelled   bool
	Utilization float64
}

// Driver runs the genetic search of spec 4.A.
type Driver struct {
	options Options
}

// NewDriver validates opts and returns a Driver.
func NewDriver(opts Options) (*Driver, error) {
	if opts.PopulationSize < 2 {
		return nil, ErrPopulationTooSmall
	}
	return &Driver{options: opts}, nil
}

// Run evolves a population of part orderings/rotations against container,
// using cache for NFP memoization. Options.ExploreConcave is the sole
// source of truth for concave handling — it is translated into the
// nfp.Options every placement evaluation uses internally, so callers never
// have to keep a second copy of that flag in sync. progress, if non-nil,
// is invoked once per completed generation.
func (d *Driver) Run(ctx context.Context, container part.Container, parts []*part.Part, cache *nfpcache.Cache, progress ProgressFunc) (Result, error) {
	if len(parts) == 0 {
		return Result{}, ErrEmptyParts
	}
	nfpOpts := nfp.Options{ExploreConcave: d.options.ExploreConcave}

	containerArea := geom.AbsArea(container.Polygon)
	var totalArea float64
	for _, p := range parts {
		totalArea += p.Area
	}

	rng := newRNG(d.options.Seed)
	pop := initialPopulation(parts, d.options, rng)

	stallLimit := d.options.MaxGenerations / 5
	if stallLimit < 20 {
		stallLimit = 20
	}

	var (
		best         Individual
		bestResult   placement.Result
		bestFitness  = math.Inf(1)
		noImprove    int
		generations  int
		cancelled    bool
	)

	for gen := 0; gen < d.options.MaxGenerations; gen++ {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		results := evaluatePopulation(ctx, container, parts, pop, cache, nfpOpts)
		order := make([]int, len(pop))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return results[order[i]].Fitness < results[order[j]].Fitness
		})

		sortedPop := make([]Individual, len(pop))
		sortedResults := make([]placement.Result, len(pop))
		for rank, idx := range order {
			sortedPop[rank] = pop[idx]
			sortedResults[rank] = results[idx]
		}

		generations = gen + 1
		if sortedResults[0].Fitness < bestFitness-geom.Eps {
			bestFitness = sortedResults[0].Fitness
			best = sortedPop[0].clone()
			bestResult = sortedResults[0]
			noImprove = 0
		} else {
			noImprove++
		}

		if progress != nil {
			placedArea := totalArea
			for _, u := range bestResult.Unplaced {
				placedArea -= u.Area
			}
			utilization := 0.0
			if containerArea > geom.Eps {
				utilization = placedArea / containerArea
			}
			progress(gen, bestFitness, utilization)
		}

		if noImprove >= stallLimit {
			break
		}

		next := make([]Individual, len(pop))
		next[0] = sortedPop[0].clone() // elitism
		for i := 1; i < len(pop); i++ {
			p1 := tournamentSelect(sortedPop, rng)
			p2 := tournamentSelect(sortedPop, rng)
			child := crossover(p1, p2, rng)
			mutate(&child, rng, d.options.MutationRatePct, parts)
			next[i] = child
		}
		pop = next
	}

	placedArea := totalArea
	for _, u := range bestResult.Unplaced {
		placedArea -= u.Area
	}
	utilization := 0.0
	if containerArea > geom.Eps {
		utilization = placedArea / containerArea
	}

	return Result{
		Placements:  bestResult.Placements,
		Unplaced:    bestResult.Unplaced,
		Fitness:     bestFitness,
		Generations: generations,
		Cancelled:   cancelled,
		Utilization: utilization,
	}, nil
}

// evaluatePopulation runs placement.Evaluate for every individual
// concurrently, writing into a pre-sized slice indexed by population
// position so the result never depends on goroutine completion order.
func evaluatePopulation(ctx context.Context, container part.Container, parts []*part.Part, pop []Individual, cache *nfpcache.Cache, nfpOpts nfp.Options) []placement.Result {
	results := make([]placement.Result, len(pop))
	var wg sync.WaitGroup
	wg.Add(len(pop))
	for i := range pop {
		i := i
		go func() {
			defer wg.Done()
			rps, err := orderedRotatedParts(pop[i], parts)
			if err != nil {
				results[i] = placement.Result{Fitness: math.Inf(1)}
				return
			}
			results[i] = placement.Evaluate(ctx, container, rps, cache, nfpOpts)
		}()
	}
	wg.Wait()
	return results
}

func orderedRotatedParts(ind Individual, parts []*part.Part) ([]part.RotatedPart, error) {
	out := make([]part.RotatedPart, len(ind.Permutation))
	for i, partIdx := range ind.Permutation {
		rp, err := part.NewRotatedPart(parts[partIdx], ind.Rotations[partIdx])
		if err != nil {
			return nil, err
		}
		out[i] = rp
	}
	return out, nil
}
