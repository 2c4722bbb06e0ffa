package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomValueMutatorRateZeroIsExactCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := Genotype[int]{1, 0, 1, 1, 0}
	m := RandomValueMutator[int]{Rate: 0, Domain: IntDomain{Min: 0, Max: 1}}

	mutant := m.Mutate(g, rng)
	assert.Equal(t, g, mutant)
}

func TestRandomValueMutatorRateOneResamplesEveryGene(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	// Genome outside the domain: rate 1 must replace every position with
	// an in-domain value.
	g := Genotype[int]{-1, -1, -1, -1, -1, -1}
	m := RandomValueMutator[int]{Rate: 1, Domain: IntDomain{Min: 0, Max: 9}}

	mutant := m.Mutate(g, rng)
	require.Len(t, mutant, len(g))
	for _, v := range mutant {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 9)
	}
}

func TestRandomValueMutatorRateIsPerGene(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	length := 100
	trials := 200
	rate := 0.1

	g := make(Genotype[int], length)
	for i := range g {
		g[i] = 2
	}
	// Domain that never produces the original value, so every resample
	// is observable.
	m := RandomValueMutator[int]{Rate: rate, Domain: IntDomain{Min: 0, Max: 1}}

	changed := 0
	for trial := 0; trial < trials; trial++ {
		mutant := m.Mutate(g, rng)
		for i := range mutant {
			if mutant[i] != g[i] {
				changed++
			}
		}
	}

	got := float64(changed) / float64(length*trials)
	assert.InDelta(t, rate, got, 0.02)
}

func TestRandomValueMutatorDoesNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := Genotype[int]{5, 5, 5, 5}
	original := g.Clone()

	RandomValueMutator[int]{Rate: 1, Domain: IntDomain{Min: 0, Max: 1}}.Mutate(g, rng)
	assert.Equal(t, original, g)
}
