// Package ga implements spec component A: the genetic-algorithm driver that
// searches over part orderings and per-part rotations, using the placement
// worker (package placement) as its fitness function.
//
// What: a population of (permutation, rotations) individuals evolves by
// elitism + tournament selection + order-preserving crossover + adjacent-
// swap/rotation-resample mutation, stopping at a generation cap or after a
// run of generations with no fitness improvement.
//
// Why: nesting is a permutation + discrete-rotation search problem with no
// known efficient exact solver; a GA is the standard heuristic (mirrored
// here on the same population/generation/tournament/crossover/mutate
// structure as a sibling 2D-cutting optimizer), reusing this module's own
// deterministic-RNG-stream idiom (see rng.go) for reproducibility.
//
// Concurrency: Driver.Run evaluates every individual in a generation
// concurrently via one goroutine per individual and a pre-sized result
// slice, since results are indexed by individual position and need no
// channel. Generations themselves are strictly sequential, and only the
// sequential generation-building step consumes the RNG, so a run's outcome
// depends only on the seed and never on how the concurrent evaluations
// interleave.
package ga
