// Package genetic - Discrete Crossover Operators
// Recombination for position-independent genomes: uniform, single-point,
// and multi-point crossover. Permutation-preserving variants live in
// permutation.go because they carry a stronger output guarantee.
package genetic

import (
	"math/rand"
	"sort"
)

// UniformCrossBreeder recombines two fixed-length genomes by walking the
// loci one by one and independently picking which parent contributes the
// value. The second child receives the value the first child declined, so
// both children together preserve the parents' gene multiset per locus.
//
// Only valid for genotypes whose genes are independently meaningful
// (booleans, bit sets, numeric vectors); never use it on permutations.
type UniformCrossBreeder[A any] struct {
	// Bias is the probability a locus is taken from the first parent.
	// Zero means unset and defaults to 0.5.
	Bias float64
}

func (UniformCrossBreeder[A]) Name() string { return "uniform-crossbreeder" }

func (c UniformCrossBreeder[A]) Cross(p1, p2 Genotype[A], rng *rand.Rand) (Genotype[A], Genotype[A], error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrGenomeLengthMismatch
	}

	bias := c.Bias
	if bias == 0 {
		bias = 0.5
	}

	child1 := make(Genotype[A], len(p1))
	child2 := make(Genotype[A], len(p1))
	for locus := range p1 {
		if rng.Float64() < bias {
			child1[locus] = p1[locus]
			child2[locus] = p2[locus]
		} else {
			child1[locus] = p2[locus]
			child2[locus] = p1[locus]
		}
	}
	return child1, child2, nil
}

// SinglePointCrossBreeder splits both genomes at one random cut point and
// swaps the tails.
type SinglePointCrossBreeder[A any] struct{}

func (SinglePointCrossBreeder[A]) Name() string { return "single-point-crossbreeder" }

func (SinglePointCrossBreeder[A]) Cross(p1, p2 Genotype[A], rng *rand.Rand) (Genotype[A], Genotype[A], error) {
	return MultiPointCrossBreeder[A]{CutPoints: 1}.Cross(p1, p2, rng)
}

// MultiPointCrossBreeder splits the genomes at CutPoints random positions
// and alternates the contributing parent between segments.
type MultiPointCrossBreeder[A any] struct {
	// CutPoints is the number of cut positions; values below 1 become 1.
	CutPoints int
}

func (MultiPointCrossBreeder[A]) Name() string { return "multi-point-crossbreeder" }

func (c MultiPointCrossBreeder[A]) Cross(p1, p2 Genotype[A], rng *rand.Rand) (Genotype[A], Genotype[A], error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrGenomeLengthMismatch
	}

	n := len(p1)
	points := c.CutPoints
	if points < 1 {
		points = 1
	}
	if points > n {
		points = n
	}

	cuts := randomCutPoints(rng, points, n)
	cuts = append(cuts, n)

	child1 := make(Genotype[A], n)
	child2 := make(Genotype[A], n)
	start := 0
	swap := false
	for _, end := range cuts {
		for i := start; i < end; i++ {
			if swap {
				child1[i] = p2[i]
				child2[i] = p1[i]
			} else {
				child1[i] = p1[i]
				child2[i] = p2[i]
			}
		}
		start = end
		swap = !swap
	}
	return child1, child2, nil
}

// randomCutPoints returns count sorted cut positions in [0, length].
// Duplicates are allowed; a duplicated cut degenerates to an empty segment,
// which the segment loop handles without special casing.
func randomCutPoints(rng *rand.Rand, count, length int) []int {
	cuts := make([]int, count)
	for i := range cuts {
		cuts[i] = rng.Intn(length + 1)
	}
	sort.Ints(cuts)
	return cuts
}
