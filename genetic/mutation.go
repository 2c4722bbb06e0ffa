// Package genetic - Value Mutation
// Per-gene resampling for genomes whose positions are independent. Not
// safe for permutation genomes; those use SwapMutator or ShuffleMutator.
package genetic

import "math/rand"

// RandomValueMutator resamples each gene independently with probability
// Rate, drawing the replacement from Domain. Rate 0 returns an exact
// copy; Rate 1 resamples every position.
type RandomValueMutator[A any] struct {
	// Rate in [0, 1] is the per-gene mutation probability.
	Rate   float64
	Domain Domain[A]
}

func (RandomValueMutator[A]) Name() string { return "random-value-mutator" }

func (m RandomValueMutator[A]) Mutate(g Genotype[A], rng *rand.Rand) Genotype[A] {
	mutant := g.Clone()
	for i := range mutant {
		if rng.Float64() < m.Rate {
			mutant[i] = m.Domain.Random(rng)
		}
	}
	return mutant
}
