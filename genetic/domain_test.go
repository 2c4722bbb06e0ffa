package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntDomainInclusiveBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := IntDomain{Min: -3, Max: 3}

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := d.Random(rng)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}

	// Both endpoints must be reachable.
	assert.True(t, seen[-3], "min bound never sampled")
	assert.True(t, seen[3], "max bound never sampled")
}

func TestIntDomainSingleValue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := IntDomain{Min: 7, Max: 7}
	for i := 0; i < 10; i++ {
		assert.Equal(t, 7, d.Random(rng))
	}
}

func TestFloatDomainBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := FloatDomain{Min: -1.5, Max: 2.5}
	for i := 0; i < 1000; i++ {
		v := d.Random(rng)
		require.GreaterOrEqual(t, v, -1.5)
		require.Less(t, v, 2.5)
	}
}

func TestBoolDomainSamplesBothValues(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d := BoolDomain{}

	trues := 0
	for i := 0; i < 1000; i++ {
		if d.Random(rng) {
			trues++
		}
	}
	assert.Greater(t, trues, 400)
	assert.Less(t, trues, 600)
}

func TestValueSetDomainStaysInSet(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	d := ValueSetDomain[string]{Values: []string{"a", "b", "c"}}
	for i := 0; i < 100; i++ {
		assert.Contains(t, d.Values, d.Random(rng))
	}
}

func TestDomainGenomeBuilderShape(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := DomainGenomeBuilder[int]{Length: 12, Domain: IntDomain{Min: 0, Max: 9}}

	genome := b.Build(rng)
	require.Len(t, genome, 12)
	for _, v := range genome {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 9)
	}
}

func TestPermutationGenomeBuilderIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	b := PermutationGenomeBuilder{Length: 20}

	for trial := 0; trial < 50; trial++ {
		genome := b.Build(rng)
		require.Len(t, genome, 20)
		require.True(t, IsPermutation(genome))
		for _, v := range genome {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 20)
		}
	}
}

func TestPermutationGenomeBuilderEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	genome := PermutationGenomeBuilder{Length: 0}.Build(rng)
	assert.Empty(t, genome)
}
