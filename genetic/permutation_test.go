package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityPermutation(n int) Genotype[int] {
	g := make(Genotype[int], n)
	for i := range g {
		g[i] = i
	}
	return g
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, IsPermutation(Genotype[int]{2, 0, 1}))
	assert.True(t, IsPermutation(Genotype[int]{}))
	assert.False(t, IsPermutation(Genotype[int]{1, 1, 2}))
}

func TestRandomSubrangeCoversAllBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 5
	sawEmpty, sawFull := false, false
	for trial := 0; trial < 5000; trial++ {
		i, j := randomSubrange(rng, n)
		require.GreaterOrEqual(t, i, 0)
		require.LessOrEqual(t, i, j)
		require.LessOrEqual(t, j, n)
		if i == j {
			sawEmpty = true
		}
		if i == 0 && j == n {
			sawFull = true
		}
	}
	assert.True(t, sawEmpty, "empty sub-range never drawn")
	assert.True(t, sawFull, "full-genome sub-range never drawn")
}

// orderOne over every possible sub-range, including i==0, j==len, i==j.
func TestOrderOneAllSubrangeBounds(t *testing.T) {
	p1 := Genotype[int]{0, 1, 2, 3, 4, 5, 6}
	p2 := Genotype[int]{6, 5, 4, 3, 2, 1, 0}
	n := len(p1)

	for i := 0; i <= n; i++ {
		for j := i; j <= n; j++ {
			child := orderOne(p1, p2, i, j)
			require.Len(t, child, n, "bounds [%d,%d)", i, j)
			require.True(t, IsPermutation(child), "bounds [%d,%d)", i, j)

			// The sub-range is verbatim from the donor.
			for pos := i; pos < j; pos++ {
				require.Equal(t, p1[pos], child[pos], "bounds [%d,%d) pos %d", i, j, pos)
			}
		}
	}
}

func TestOrderOneEmptySubrangeCopiesFiller(t *testing.T) {
	p1 := Genotype[int]{0, 1, 2, 3, 4}
	p2 := Genotype[int]{4, 3, 2, 1, 0}

	for i := 0; i <= len(p1); i++ {
		assert.Equal(t, p2, orderOne(p1, p2, i, i))
	}
}

func TestOrderOneFullSubrangeCopiesDonor(t *testing.T) {
	p1 := Genotype[int]{3, 0, 4, 1, 2}
	p2 := Genotype[int]{0, 1, 2, 3, 4}
	assert.Equal(t, p1, orderOne(p1, p2, 0, len(p1)))
}

func TestOrderOneKnownExample(t *testing.T) {
	// Classic OX1: sub-range [2,5) from p1, rest in p2 order from index 0.
	p1 := Genotype[int]{0, 1, 2, 3, 4, 5, 6}
	p2 := Genotype[int]{6, 4, 2, 0, 1, 3, 5}

	child := orderOne(p1, p2, 2, 5)
	assert.Equal(t, Genotype[int]{6, 0, 2, 3, 4, 1, 5}, child)
}

func TestOrderOneCrossoverProducesPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	builder := PermutationGenomeBuilder{Length: 10}

	for trial := 0; trial < 200; trial++ {
		p1 := builder.Build(rng)
		p2 := builder.Build(rng)

		c1, c2, err := OrderOneCrossover[int]{}.Cross(p1, p2, rng)
		require.NoError(t, err)
		require.True(t, IsPermutation(c1))
		require.True(t, IsPermutation(c2))
		require.Len(t, c1, 10)
		require.Len(t, c2, 10)
	}
}

func TestOrderOneCrossoverRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, _, err := OrderOneCrossover[int]{}.Cross(Genotype[int]{0, 1, 2}, Genotype[int]{0, 1}, rng)
	require.ErrorIs(t, err, ErrGenomeLengthMismatch)

	_, _, err = OrderOneCrossover[int]{}.Cross(Genotype[int]{0, 1, 1}, Genotype[int]{0, 1, 2}, rng)
	require.ErrorIs(t, err, ErrNotPermutation)

	// Disjoint element sets cannot recombine into a shared permutation.
	_, _, err = OrderOneCrossover[int]{}.Cross(Genotype[int]{0, 1, 2}, Genotype[int]{3, 4, 5}, rng)
	require.ErrorIs(t, err, ErrNotPermutation)
}

func TestPartiallyMappedAllSubrangeBounds(t *testing.T) {
	p1 := Genotype[int]{0, 1, 2, 3, 4, 5, 6}
	p2 := Genotype[int]{3, 6, 0, 5, 1, 4, 2}
	n := len(p1)

	for i := 0; i <= n; i++ {
		for j := i; j <= n; j++ {
			child := partiallyMapped(p1, p2, i, j)
			require.Len(t, child, n, "bounds [%d,%d)", i, j)
			require.True(t, IsPermutation(child), "bounds [%d,%d)", i, j)
			for pos := i; pos < j; pos++ {
				require.Equal(t, p1[pos], child[pos], "bounds [%d,%d) pos %d", i, j, pos)
			}
		}
	}
}

func TestPartiallyMappedEmptySubrangeCopiesOther(t *testing.T) {
	p1 := Genotype[int]{0, 1, 2, 3}
	p2 := Genotype[int]{3, 2, 1, 0}
	for i := 0; i <= len(p1); i++ {
		assert.Equal(t, p2, partiallyMapped(p1, p2, i, i))
	}
}

func TestPartiallyMappedKnownExample(t *testing.T) {
	// Textbook PMX with sub-range [3,7).
	p1 := Genotype[int]{0, 1, 2, 3, 4, 5, 6, 7, 8}
	p2 := Genotype[int]{8, 2, 6, 7, 1, 5, 4, 0, 3}

	child := partiallyMapped(p1, p2, 3, 7)
	require.True(t, IsPermutation(child))
	// Sub-range from p1.
	assert.Equal(t, Genotype[int]{3, 4, 5, 6}, child[3:7])
	// Outside: p2 values, conflicts chased through the mapping.
	// pos 0: 8 free. pos 1: 2 free. pos 2: 6 -> p2[6]=4 -> p2[4]=1 free.
	// pos 7: 0 free. pos 8: 3 -> p2[3]=7 free.
	assert.Equal(t, Genotype[int]{8, 2, 1, 3, 4, 5, 6, 0, 7}, child)
}

func TestPartiallyMappedCrossoverProducesPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	builder := PermutationGenomeBuilder{Length: 12}

	for trial := 0; trial < 200; trial++ {
		p1 := builder.Build(rng)
		p2 := builder.Build(rng)

		c1, c2, err := PartiallyMappedCrossover[int]{}.Cross(p1, p2, rng)
		require.NoError(t, err)
		require.True(t, IsPermutation(c1))
		require.True(t, IsPermutation(c2))
	}
}

func TestPartiallyMappedCrossoverRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	_, _, err := PartiallyMappedCrossover[int]{}.Cross(Genotype[int]{0, 1}, Genotype[int]{0, 1, 2}, rng)
	require.ErrorIs(t, err, ErrGenomeLengthMismatch)

	_, _, err = PartiallyMappedCrossover[int]{}.Cross(Genotype[int]{0, 0, 1}, Genotype[int]{0, 1, 2}, rng)
	require.ErrorIs(t, err, ErrNotPermutation)
}

func TestSwapMutatorRateZeroIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	g := identityPermutation(8)

	mutant := SwapMutator[int]{Rate: 0}.Mutate(g, rng)
	assert.Equal(t, g, mutant)
	assert.NotSame(t, &g[0], &mutant[0], "input aliased")
}

func TestSwapMutatorRateOneSwapsExactlyTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := identityPermutation(10)

	for trial := 0; trial < 100; trial++ {
		mutant := SwapMutator[int]{Rate: 1}.Mutate(g, rng)
		require.True(t, IsPermutation(mutant))

		moved := 0
		for i := range g {
			if mutant[i] != g[i] {
				moved++
			}
		}
		require.Equal(t, 2, moved)
	}
}

func TestSwapMutatorShortGenomes(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	assert.Equal(t, Genotype[int]{0}, SwapMutator[int]{Rate: 1}.Mutate(Genotype[int]{0}, rng))
	assert.Empty(t, SwapMutator[int]{Rate: 1}.Mutate(Genotype[int]{}, rng))
}

func TestShuffleMutatorPreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := identityPermutation(15)

	for trial := 0; trial < 200; trial++ {
		mutant := ShuffleMutator[int]{Rate: 1}.Mutate(g, rng)
		require.True(t, IsPermutation(mutant))
		require.Len(t, mutant, len(g))
	}
}

func TestShuffleMutatorRateZeroIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	g := identityPermutation(6)
	assert.Equal(t, g, ShuffleMutator[int]{Rate: 0}.Mutate(g, rng))
}

func TestPermutationMutatorsDoNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := identityPermutation(10)
	original := g.Clone()

	SwapMutator[int]{Rate: 1}.Mutate(g, rng)
	ShuffleMutator[int]{Rate: 1}.Mutate(g, rng)

	assert.Equal(t, original, g)
}
