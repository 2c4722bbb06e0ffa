// Package genetic - Core Types and Operator Contracts
// Defines the genotype/population data model and the interfaces every
// selection, crossover, and mutation strategy implements.
package genetic

import (
	"errors"
	"math/rand"
)

// Sentinel errors for invalid population structure or operator input.
// Callers classify these as configuration errors via errors.Is.
var (
	// ErrZeroPopulationSize is returned when a population of size 0 is requested.
	ErrZeroPopulationSize = errors.New("genetic: population size must be positive")

	// ErrEmptyPopulation is returned by operators that require at least one individual.
	ErrEmptyPopulation = errors.New("genetic: population is empty")

	// ErrGenomeLengthMismatch is returned when parent genomes differ in length.
	ErrGenomeLengthMismatch = errors.New("genetic: parent genome lengths differ")

	// ErrNotPermutation is returned when an operator requiring permutation
	// genomes receives input with duplicate values.
	ErrNotPermutation = errors.New("genetic: genome is not a permutation")
)

// Genotype is one candidate solution's encoding: a fixed-shape sequence of
// genes. The gene type is opaque to the engine; operators that need more
// than storage (equality, value sampling) declare it through constraints.
type Genotype[A any] []A

// Clone returns an independent copy of the genotype.
func (g Genotype[A]) Clone() Genotype[A] {
	if g == nil {
		return nil
	}
	cp := make(Genotype[A], len(g))
	copy(cp, g)
	return cp
}

// Individual pairs a genotype with its evaluated fitness.
// Fitness is only meaningful once Evaluated is true.
type Individual[A any] struct {
	Genome    Genotype[A]
	Fitness   float64
	Evaluated bool
}

// FitnessFunc scores a genotype. Implementations must be pure: no side
// effects, same genome always yields the same fitness. Higher is better.
type FitnessFunc[A any] func(Genotype[A]) float64

// ---------- Operator Interfaces ----------

// Selector chooses k parents from a population biased by fitness.
// Selection is with replacement, so k may exceed the population size.
// The returned slice always holds exactly k individuals.
type Selector[A any] interface {
	// Name identifies the strategy in logs and error messages.
	Name() string

	// Select returns k individuals drawn from pop using rng.
	// Fails with ErrEmptyPopulation if pop holds no individuals.
	Select(pop *Population[A], k int, rng *rand.Rand) ([]Individual[A], error)
}

// Crossover produces two offspring genotypes from two parents.
// Offspring have the same shape as the parents; permutation-preserving
// implementations additionally guarantee valid permutations.
type Crossover[A any] interface {
	Name() string

	// Cross recombines p1 and p2 into two children.
	// Fails with ErrGenomeLengthMismatch if the parents differ in length.
	Cross(p1, p2 Genotype[A], rng *rand.Rand) (Genotype[A], Genotype[A], error)
}

// Mutator perturbs a genotype, returning a new genotype of the same shape.
// The input is never modified.
type Mutator[A any] interface {
	Name() string

	Mutate(g Genotype[A], rng *rand.Rand) Genotype[A]
}
