// Package genetic - Permutation-Preserving Operators
// Order-one and partially mapped crossover plus the swap/shuffle mutators.
// Every operator here guarantees: valid permutations in, valid permutation
// of the same element set out, for any sub-range bounds including the
// empty and full-length cases. Sub-range bounds are always derived from
// the actual genome length, never assumed minimums.
package genetic

import "math/rand"

// IsPermutation reports whether the genome contains no duplicate values.
func IsPermutation[A comparable](g Genotype[A]) bool {
	seen := make(map[A]struct{}, len(g))
	for _, v := range g {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// samePermutationSet reports whether two equal-length genomes are
// permutations of the same element set.
func samePermutationSet[A comparable](p1, p2 Genotype[A]) bool {
	if !IsPermutation(p1) || !IsPermutation(p2) {
		return false
	}
	set := make(map[A]struct{}, len(p1))
	for _, v := range p1 {
		set[v] = struct{}{}
	}
	for _, v := range p2 {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// randomSubrange picks bounds 0 <= i <= j <= n uniformly. Both the empty
// sub-range (i == j) and the full genome (i == 0, j == n) are legal.
func randomSubrange(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n + 1)
	j := rng.Intn(n + 1)
	if i > j {
		i, j = j, i
	}
	return i, j
}

// OrderOneCrossover (OX1) copies a contiguous sub-range from one parent
// verbatim, then fills the remaining positions with the other parent's
// values in their relative order, skipping values the sub-range already
// provided. An empty sub-range therefore degenerates to a straight copy of
// the other parent.
type OrderOneCrossover[A comparable] struct{}

func (OrderOneCrossover[A]) Name() string { return "order-one-crossover" }

func (OrderOneCrossover[A]) Cross(p1, p2 Genotype[A], rng *rand.Rand) (Genotype[A], Genotype[A], error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrGenomeLengthMismatch
	}
	if !samePermutationSet(p1, p2) {
		return nil, nil, ErrNotPermutation
	}
	i, j := randomSubrange(rng, len(p1))
	return orderOne(p1, p2, i, j), orderOne(p2, p1, i, j), nil
}

// orderOne builds one OX1 child: sub-range [i, j) from donor, remaining
// positions from filler in filler order.
func orderOne[A comparable](donor, filler Genotype[A], i, j int) Genotype[A] {
	n := len(donor)
	child := make(Genotype[A], n)

	copied := make(map[A]struct{}, j-i)
	for pos := i; pos < j; pos++ {
		child[pos] = donor[pos]
		copied[donor[pos]] = struct{}{}
	}

	// Walk the filler parent once, dropping its values into the open
	// positions in order. Both cursors stay within [0, n) because exactly
	// n-(j-i) filler values survive the skip.
	pos := 0
	for _, v := range filler {
		if _, taken := copied[v]; taken {
			continue
		}
		for pos >= i && pos < j {
			pos++
		}
		child[pos] = v
		pos++
	}
	return child
}

// PartiallyMappedCrossover (PMX) copies a contiguous sub-range from one
// parent, then fills each remaining position with the other parent's value
// at that position, resolving collisions through the mapping the sub-range
// induces between the two parents. Resolution terminates for all valid
// permutations because the sub-range values form a bijection between the
// parents' sub-ranges.
type PartiallyMappedCrossover[A comparable] struct{}

func (PartiallyMappedCrossover[A]) Name() string { return "partially-mapped-crossover" }

func (PartiallyMappedCrossover[A]) Cross(p1, p2 Genotype[A], rng *rand.Rand) (Genotype[A], Genotype[A], error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrGenomeLengthMismatch
	}
	if !samePermutationSet(p1, p2) {
		return nil, nil, ErrNotPermutation
	}
	i, j := randomSubrange(rng, len(p1))
	return partiallyMapped(p1, p2, i, j), partiallyMapped(p2, p1, i, j), nil
}

// partiallyMapped builds one PMX child with sub-range [i, j) from donor.
func partiallyMapped[A comparable](donor, other Genotype[A], i, j int) Genotype[A] {
	n := len(donor)
	child := make(Genotype[A], n)

	// Position of each donor sub-range value, for chasing the mapping.
	segIndex := make(map[A]int, j-i)
	for pos := i; pos < j; pos++ {
		child[pos] = donor[pos]
		segIndex[donor[pos]] = pos
	}

	for pos := 0; pos < n; pos++ {
		if pos >= i && pos < j {
			continue
		}
		v := other[pos]
		for {
			seg, collides := segIndex[v]
			if !collides {
				break
			}
			v = other[seg]
		}
		child[pos] = v
	}
	return child
}

// ---------- Permutation Mutation ----------

// SwapMutator exchanges two distinct random positions with probability
// Rate per genome. It is the permutation-safe counterpart to per-gene
// value mutation: uniqueness is preserved because values only move.
type SwapMutator[A any] struct {
	// Rate in [0, 1] is the probability the genome is mutated at all.
	Rate float64
}

func (SwapMutator[A]) Name() string { return "swap-mutator" }

func (m SwapMutator[A]) Mutate(g Genotype[A], rng *rand.Rand) Genotype[A] {
	mutant := g.Clone()
	if len(mutant) < 2 || rng.Float64() >= m.Rate {
		return mutant
	}
	i := rng.Intn(len(mutant))
	j := rng.Intn(len(mutant) - 1)
	if j >= i {
		j++
	}
	mutant[i], mutant[j] = mutant[j], mutant[i]
	return mutant
}

// ShuffleMutator reshuffles a random contiguous sub-range with probability
// Rate per genome. A heavier permutation mutation than SwapMutator; still
// uniqueness-preserving.
type ShuffleMutator[A any] struct {
	Rate float64
}

func (ShuffleMutator[A]) Name() string { return "shuffle-mutator" }

func (m ShuffleMutator[A]) Mutate(g Genotype[A], rng *rand.Rand) Genotype[A] {
	mutant := g.Clone()
	if len(mutant) < 2 || rng.Float64() >= m.Rate {
		return mutant
	}
	i, j := randomSubrange(rng, len(mutant))
	for k := j - 1; k > i; k-- {
		swap := i + rng.Intn(k-i+1)
		mutant[k], mutant[swap] = mutant[swap], mutant[k]
	}
	return mutant
}
