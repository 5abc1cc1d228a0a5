package nest

import (
	"errors"
	"fmt"
)

// Config holds every recognized option from spec section 6. The zero value
// is not valid; build one with NewConfig, which fills in defaults and
// rejects out-of-range values in a single aggregated pass.
type Config struct {
	CurveTolerance  float64 // consumed at ingest; carried through for callers that flatten curves themselves
	Spacing         float64 // mandatory clearance between any two placed parts and the container
	Rotations       int     // size of the allowed-rotation set per part
	PopulationSize  int     // GA population size, MUST be >= 2
	MutationRatePct float64 // per-gene mutation percentage, clamped to [1,50]
	MaxGenerations  int     // hard upper bound on generations
	ExploreConcave  bool    // enable pocket-seeded NFP orbits for concave shapes
	UseHoles        bool    // allow parts to be placed inside holes of other parts (experimental)
	Seed            int64   // deterministic PRNG seed
}

// DefaultConfig returns spec section 6's documented defaults.
func DefaultConfig() Config {
	return Config{
		CurveTolerance:  0.3,
		Spacing:         0,
		Rotations:       4,
		PopulationSize:  10,
		MutationRatePct: 10,
		MaxGenerations:  100,
		ExploreConcave:  false,
		UseHoles:        false,
		Seed:            0,
	}
}

// Option mutates a Config under construction, mirroring the teacher's
// functional-option style (builder.BuilderOption, tsp.Options).
type Option func(*Config)

func WithCurveTolerance(v float64) Option  { return func(c *Config) { c.CurveTolerance = v } }
func WithSpacing(v float64) Option         { return func(c *Config) { c.Spacing = v } }
func WithRotations(n int) Option           { return func(c *Config) { c.Rotations = n } }
func WithPopulationSize(n int) Option      { return func(c *Config) { c.PopulationSize = n } }
func WithMutationRatePct(v float64) Option { return func(c *Config) { c.MutationRatePct = v } }
func WithMaxGenerations(n int) Option      { return func(c *Config) { c.MaxGenerations = n } }
func WithExploreConcave(v bool) Option     { return func(c *Config) { c.ExploreConcave = v } }
func WithUseHoles(v bool) Option           { return func(c *Config) { c.UseHoles = v } }
func WithSeed(seed int64) Option           { return func(c *Config) { c.Seed = seed } }

// NewConfig builds a Config from DefaultConfig plus opts, validating every
// field in one pass (spec's "unknown keys are rejected at construction",
// generalized here to "out-of-range values are rejected at construction")
// rather than failing on the first bad field. mutation_rate is clamped
// rather than rejected, per spec section 6's own "clamped to [1,50]"
// wording for that one field.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var fieldErrs []error
	if cfg.Rotations < 1 {
		fieldErrs = append(fieldErrs, fmt.Errorf("rotations must be >= 1, got %d", cfg.Rotations))
	}
	if cfg.PopulationSize < 2 {
		fieldErrs = append(fieldErrs, fmt.Errorf("population_size must be >= 2, got %d", cfg.PopulationSize))
	}
	if cfg.MaxGenerations < 1 {
		fieldErrs = append(fieldErrs, fmt.Errorf("max_generations must be >= 1, got %d", cfg.MaxGenerations))
	}
	if cfg.Spacing < 0 {
		fieldErrs = append(fieldErrs, fmt.Errorf("spacing must be >= 0, got %f", cfg.Spacing))
	}
	if cfg.CurveTolerance < 0 {
		fieldErrs = append(fieldErrs, fmt.Errorf("curve_tolerance must be >= 0, got %f", cfg.CurveTolerance))
	}
	if len(fieldErrs) > 0 {
		return Config{}, errors.Join(append([]error{ErrInvalidConfig}, fieldErrs...)...)
	}

	if cfg.MutationRatePct < 1 {
		cfg.MutationRatePct = 1
	} else if cfg.MutationRatePct > 50 {
		cfg.MutationRatePct = 50
	}
	return cfg, nil
}
