package ga

import (
	"math/rand"
	"sort"

	"github.com/polynest/nest2d/part"
)

// initialPopulation builds spec 4.A's seed generation: individual 0 is parts
// sorted by area descending at rotation 0; every other individual is
// individual 0 with one mutation pass applied, each using its own RNG
// stream so population members don't share mutation decisions.
func initialPopulation(parts []*part.Part, opts Options, rng *rand.Rand) []Individual {
	n := len(parts)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return parts[order[i]].Area > parts[order[j]].Area
	})

	base := Individual{Permutation: order, Rotations: make([]int, n)}
	pop := make([]Individual, opts.PopulationSize)
	pop[0] = base.clone()
	for i := 1; i < opts.PopulationSize; i++ {
		child := base.clone()
		sub := deriveRNG(rng, uint64(i))
		mutate(&child, sub, opts.MutationRatePct, parts)
		pop[i] = child
	}
	return pop
}

// tournamentSelect picks two indices uniformly from a fitness-ascending-
// sorted population (so array index doubles as rank) and returns the
// better-ranked one with probability 0.75 (spec 4.A step 4 "tournament of
// size 2 ... pick the better with probability 0.75").
func tournamentSelect(sorted []Individual, rng *rand.Rand) Individual {
	n := len(sorted)
	i, j := rng.Intn(n), rng.Intn(n)
	better, worse := i, j
	if j < i {
		better, worse = j, i
	}
	if rng.Float64() < 0.75 {
		return sorted[better]
	}
	return sorted[worse]
}

// crossover implements order-preserving crossover: a random cut point
// c in [1, L-1] takes parent1's prefix verbatim, then fills the remainder
// with parent2's genes in parent2's order, skipping genes already taken.
// Each gene's rotation is inherited from whichever parent contributed it.
func crossover(parent1, parent2 Individual, rng *rand.Rand) Individual {
	l := len(parent1.Permutation)
	child := Individual{
		Permutation: make([]int, l),
		Rotations:   make([]int, len(parent1.Rotations)),
	}
	if l <= 1 {
		copy(child.Permutation, parent1.Permutation)
		copy(child.Rotations, parent1.Rotations)
		return child
	}

	c := 1 + rng.Intn(l-1)
	taken := make(map[int]bool, l)
	for i := 0; i < c; i++ {
		gene := parent1.Permutation[i]
		child.Permutation[i] = gene
		child.Rotations[gene] = parent1.Rotations[gene]
		taken[gene] = true
	}
	pos := c
	for _, gene := range parent2.Permutation {
		if taken[gene] {
			continue
		}
		child.Permutation[pos] = gene
		child.Rotations[gene] = parent2.Rotations[gene]
		pos++
	}
	return child
}

// mutate applies spec 4.A step 4's mutation independently per gene: with
// probability mutationRatePct/100, swap this permutation position with the
// next one; independently with the same probability, resample that part's
// rotation uniformly from its own allowed set.
func mutate(ind *Individual, rng *rand.Rand, mutationRatePct float64, parts []*part.Part) {
	p := mutationRatePct / 100
	l := len(ind.Permutation)
	for i := 0; i < l-1; i++ {
		if rng.Float64() < p {
			ind.Permutation[i], ind.Permutation[i+1] = ind.Permutation[i+1], ind.Permutation[i]
		}
	}
	for partIdx, rotations := range rotationCounts(parts) {
		if rng.Float64() < p {
			ind.Rotations[partIdx] = rng.Intn(rotations)
		}
	}
}

func rotationCounts(parts []*part.Part) []int {
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i] = len(p.Rotations)
	}
	return out
}
