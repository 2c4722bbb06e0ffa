// Package genetic - Selection Strategies
// Roulette-wheel, tournament, and linear-rank selection. The engine treats
// the strategy as configuration; all three satisfy the same contract:
// exactly k parents, drawn with replacement, biased by fitness.
package genetic

import (
	"math/rand"
	"sort"
)

// RouletteSelector implements fitness-proportionate selection. Fitness
// values may be negative; the wheel shifts all weights so the minimum
// lands just above zero before spinning.
type RouletteSelector[A any] struct{}

func (RouletteSelector[A]) Name() string { return "roulette" }

func (RouletteSelector[A]) Select(pop *Population[A], k int, rng *rand.Rand) ([]Individual[A], error) {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil, ErrEmptyPopulation
	}

	// Shift weights so every individual keeps a non-zero slice of the wheel.
	adjustment := 0.0
	minFitness := pop.Individuals[0].Fitness
	for _, ind := range pop.Individuals[1:] {
		if ind.Fitness < minFitness {
			minFitness = ind.Fitness
		}
	}
	if minFitness <= 0 {
		adjustment = -minFitness + 1
	}

	total := 0.0
	for _, ind := range pop.Individuals {
		total += ind.Fitness + adjustment
	}

	parents := make([]Individual[A], 0, k)
	for len(parents) < k {
		spin := rng.Float64() * total
		cumulative := 0.0
		picked := pop.Individuals[len(pop.Individuals)-1]
		for _, ind := range pop.Individuals {
			cumulative += ind.Fitness + adjustment
			if cumulative >= spin {
				picked = ind
				break
			}
		}
		parents = append(parents, picked)
	}
	return parents, nil
}

// TournamentSelector runs k independent tournaments of Size random
// candidates each and keeps every tournament's fittest member.
type TournamentSelector[A any] struct {
	// Size is the number of candidates per tournament. Values below 2 are
	// treated as 2; sizes above the population are capped to the population.
	Size int
}

func (TournamentSelector[A]) Name() string { return "tournament" }

func (s TournamentSelector[A]) Select(pop *Population[A], k int, rng *rand.Rand) ([]Individual[A], error) {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil, ErrEmptyPopulation
	}

	size := s.Size
	if size < 2 {
		size = 2
	}
	if size > len(pop.Individuals) {
		size = len(pop.Individuals)
	}

	parents := make([]Individual[A], 0, k)
	for len(parents) < k {
		best := pop.Individuals[rng.Intn(len(pop.Individuals))]
		for i := 1; i < size; i++ {
			candidate := pop.Individuals[rng.Intn(len(pop.Individuals))]
			if candidate.Fitness > best.Fitness {
				best = candidate
			}
		}
		parents = append(parents, best)
	}
	return parents, nil
}

// RankSelector implements linear-rank selection: selection probability
// depends on fitness rank rather than magnitude, which softens the pull of
// outlier fitness values.
type RankSelector[A any] struct {
	// Pressure is the linear ranking selection pressure s in [1, 2].
	// Values outside the range are clamped; 0 defaults to 1.5.
	Pressure float64
}

func (RankSelector[A]) Name() string { return "rank" }

func (s RankSelector[A]) Select(pop *Population[A], k int, rng *rand.Rand) ([]Individual[A], error) {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil, ErrEmptyPopulation
	}

	pressure := s.Pressure
	if pressure == 0 {
		pressure = 1.5
	}
	if pressure < 1 {
		pressure = 1
	}
	if pressure > 2 {
		pressure = 2
	}

	n := len(pop.Individuals)

	// Sort ascending by fitness so rank 0 is the worst individual.
	// Stable sort keeps equal-fitness ordering deterministic.
	sorted := make([]Individual[A], n)
	copy(sorted, pop.Individuals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness < sorted[j].Fitness
	})

	// Linear ranking: weight(rank) = (2-s) + 2(s-1)*rank/(n-1).
	weights := make([]float64, n)
	total := 0.0
	for rank := range weights {
		w := 2 - pressure
		if n > 1 {
			w += 2 * (pressure - 1) * float64(rank) / float64(n-1)
		}
		weights[rank] = w
		total += w
	}

	parents := make([]Individual[A], 0, k)
	for len(parents) < k {
		spin := rng.Float64() * total
		cumulative := 0.0
		picked := sorted[n-1]
		for i, w := range weights {
			cumulative += w
			if cumulative >= spin {
				picked = sorted[i]
				break
			}
		}
		parents = append(parents, picked)
	}
	return parents, nil
}
