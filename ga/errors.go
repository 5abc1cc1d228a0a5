package ga

import "errors"

var (
	// ErrEmptyParts is returned when Run is called with no parts to place.
	ErrEmptyParts = errors.New("ga: no parts to place")

	// ErrPopulationTooSmall is returned when Options.PopulationSize < 2.
	ErrPopulationTooSmall = errors.New("ga: population_size must be >= 2")
)
