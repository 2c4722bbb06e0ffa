// Package genetic - Random-Value Domains and Genome Builders
// A Domain samples one gene uniformly at random; a GenomeBuilder assembles
// whole genotypes for initial populations.
package genetic

import "math/rand"

// Domain produces uniformly distributed valid values for one gene.
// Implementations are deterministic given a deterministic rng, which is
// what makes seed-reproducible runs possible. Bounds are enforced by
// construction; Random never fails.
type Domain[A any] interface {
	Random(rng *rand.Rand) A
}

// BoolDomain samples true or false with equal probability.
type BoolDomain struct{}

func (BoolDomain) Random(rng *rand.Rand) bool {
	return rng.Intn(2) == 0
}

// IntDomain samples integers in [Min, Max], inclusive on both ends.
type IntDomain struct {
	Min, Max int
}

func (d IntDomain) Random(rng *rand.Rand) int {
	return d.Min + rng.Intn(d.Max-d.Min+1)
}

// FloatDomain samples float64 values in [Min, Max).
type FloatDomain struct {
	Min, Max float64
}

func (d FloatDomain) Random(rng *rand.Rand) float64 {
	return d.Min + rng.Float64()*(d.Max-d.Min)
}

// ValueSetDomain samples uniformly from a fixed set of allowed values.
// The set must be non-empty.
type ValueSetDomain[A any] struct {
	Values []A
}

func (d ValueSetDomain[A]) Random(rng *rand.Rand) A {
	return d.Values[rng.Intn(len(d.Values))]
}

// ---------- Genome Builders ----------

// GenomeBuilder constructs one complete genotype for the initial population.
type GenomeBuilder[A any] interface {
	Build(rng *rand.Rand) Genotype[A]
}

// DomainGenomeBuilder builds fixed-length genomes by sampling every gene
// independently from a Domain.
type DomainGenomeBuilder[A any] struct {
	Length int
	Domain Domain[A]
}

func (b DomainGenomeBuilder[A]) Build(rng *rand.Rand) Genotype[A] {
	genome := make(Genotype[A], b.Length)
	for i := range genome {
		genome[i] = b.Domain.Random(rng)
	}
	return genome
}

// PermutationGenomeBuilder builds genomes that are uniform random
// permutations of [0, Length). Use with the permutation-preserving
// operators; the value-domain operators would break uniqueness.
type PermutationGenomeBuilder struct {
	Length int
}

func (b PermutationGenomeBuilder) Build(rng *rand.Rand) Genotype[int] {
	genome := make(Genotype[int], b.Length)
	for i := range genome {
		genome[i] = i
	}
	// Fisher-Yates
	for i := len(genome) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		genome[i], genome[j] = genome[j], genome[i]
	}
	return genome
}
