package ga

// Options configures one Driver.Run, mirroring tsp.Options/DefaultOptions:
// a single struct with a Default constructor rather than functional options,
// since every field here is mandatory numeric tuning rather than optional
// behavior toggles.
type Options struct {
	PopulationSize int     // spec "population_size", default 10, MUST be >= 2
	MutationRatePct float64 // spec "mutation_rate", default 10, clamped [1,50] by the caller
	MaxGenerations  int     // spec "max_generations", default 100
	Seed            int64   // spec "seed"
	ExploreConcave  bool    // spec "explore_concave"
}

// DefaultOptions returns spec section 6's documented defaults.
func DefaultOptions() Options {
	return Options{
		PopulationSize:  10,
		MutationRatePct: 10,
		MaxGenerations:  100,
	}
}
