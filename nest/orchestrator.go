package nest

import (
	"context"

	ngclipper "github.com/polynest/nest2d/clipper"
	"github.com/polynest/nest2d/ga"
	"github.com/polynest/nest2d/geom"
	"github.com/polynest/nest2d/nfpcache"
	"github.com/polynest/nest2d/part"
)

// Orchestrator owns a Config and the one nfpcache.Cache shared by every
// Run it performs, so repeated runs against the same container/part family
// keep benefiting from memoized NFP results (spec 4.O: "owner of the NFP
// cache passed to workers").
type Orchestrator struct {
	config Config
	cache  *nfpcache.Cache
}

// NewOrchestrator returns an Orchestrator bound to cfg.
func NewOrchestrator(cfg Config) *Orchestrator {
	return &Orchestrator{config: cfg, cache: nfpcache.New()}
}

// CacheStats exposes the orchestrator's NFP cache statistics (supplemented
// feature: nfpcache.Cache.Stats()).
func (o *Orchestrator) CacheStats() nfpcache.Stats {
	return o.cache.Stats()
}

// Run validates containerPoly and partPolys, applies spacing and hole
// handling, and drives a GA search for the best placement. progress, if
// non-nil, is invoked once per completed generation with
// (gen, best_fitness, utilization).
//
// containerPoly may carry Children loops representing holes; whether they
// are honored as forbidden regions is controlled by Config.UseHoles (see
// DESIGN.md for why this resolves the spec's open "use_holes semantics"
// question this way): off, they are stripped before normalization and the
// container is treated as a solid outline; on, they are kept and
// nfp.InnerNFP subtracts them as forbidden regions for every part.
func (o *Orchestrator) Run(ctx context.Context, containerPoly geom.Polygon, partPolys []geom.Polygon, progress ga.ProgressFunc) (Result, error) {
	if err := geom.Validate(containerPoly); err != nil {
		return Result{}, err
	}
	working := containerPoly
	if !o.config.UseHoles {
		working.Children = nil
	}

	parts, err := part.NewParts(partPolys, o.config.Rotations)
	if err != nil {
		return Result{}, err
	}

	container := part.NewContainer("container", working)

	half := o.config.Spacing / 2
	if half > 0 {
		offsetContainer, cErr := ngclipper.Offset(container.Polygon, -half)
		if cErr != nil {
			// The container collapsed under inward offsetting: every part is
			// now necessarily infeasible. Keep an empty polygon rather than
			// surfacing an error, per spec section 7's Infeasible policy
			// ("the GA still runs but every individual's fitness equals the
			// total part area").
			offsetContainer = geom.Polygon{ID: container.ID}
		}
		container.Polygon = offsetContainer
		container.Bounds = geom.BoundsOf(offsetContainer)

		for _, p := range parts {
			offsetPoly, pErr := ngclipper.Offset(p.Polygon, half)
			if pErr != nil {
				continue // leave this part at its un-offset size; it will likely just fail to place
			}
			offsetPoly.ID = p.ID
			p.Polygon = offsetPoly
			p.Area = geom.AbsArea(offsetPoly)
			p.Bounds = geom.BoundsOf(offsetPoly)
		}
	}

	gaOpts := ga.Options{
		PopulationSize:  o.config.PopulationSize,
		MutationRatePct: o.config.MutationRatePct,
		MaxGenerations:  o.config.MaxGenerations,
		Seed:            o.config.Seed,
		ExploreConcave:  o.config.ExploreConcave,
	}
	driver, err := ga.NewDriver(gaOpts)
	if err != nil {
		return Result{}, err
	}

	gaResult, err := driver.Run(ctx, container, parts, o.cache, progress)
	if err != nil {
		return Result{}, err
	}

	placements := make([]Placement, len(gaResult.Placements))
	for i, p := range gaResult.Placements {
		placements[i] = Placement{PartID: p.PartID, Dx: p.Dx, Dy: p.Dy, Rotation: p.Rotation}
	}
	unplaced := make([]string, len(gaResult.Unplaced))
	for i, u := range gaResult.Unplaced {
		unplaced[i] = u.PartID
	}

	return Result{
		Placements:  placements,
		Unplaced:    unplaced,
		Fitness:     gaResult.Fitness,
		Generations: gaResult.Generations,
		Utilization: gaResult.Utilization,
		Cancelled:   gaResult.Cancelled,
	}, nil
}
