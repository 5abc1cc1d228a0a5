// Package nest implements spec component O: the orchestrator that owns
// configuration, applies spacing offsets, normalizes the container,
// assigns stable part IDs, drives the GA, and reports the best placement.
//
// What: Orchestrator.Run validates raw input polygons, builds the part/
// container model (package part), applies the spacing offset (package
// clipper), and hands everything to a ga.Driver backed by one
// nfpcache.Cache owned for the orchestrator's whole lifetime, so repeated
// Run calls on the same Orchestrator keep reusing NFP results across runs
// as well as within one.
//
// Why: spec section 4.O assigns exactly this ownership boundary: the
// orchestrator is the only component that knows about raw configuration
// and raw (un-normalized, un-offset) geometry; every downstream component
// (ga, placement, nfp) works in the orchestrator's normalized frame.
//
// Error policy (spec section 7): InvalidInput (self-intersecting, too few
// vertices, non-finite coordinates, empty parts list) surfaces immediately
// as a Go error before any GA work runs. Infeasible and NFPFailure are
// recovered locally — the GA still runs, the result just reports fewer
// placements and a higher fitness — and are visible only through Result,
// never returned as an error. Cancelled is reported via Result.Cancelled.
package nest
