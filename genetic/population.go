// Package genetic - Population Model
// Ordered collection of individuals plus the statistics the engine reports
// after every generation.
package genetic

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Population is an ordered, non-empty collection of individuals.
// The simulation engine owns its population for the lifetime of a run and
// replaces it wholesale each generation; operators never mutate one in
// place.
type Population[A any] struct {
	Individuals []Individual[A]
}

// NewRandomPopulation builds size individuals with genomes from builder.
// Fitness is left unset; callers evaluate before the first selection.
// Fails with ErrZeroPopulationSize when size < 1.
func NewRandomPopulation[A any](size int, builder GenomeBuilder[A], rng *rand.Rand) (*Population[A], error) {
	if size < 1 {
		return nil, ErrZeroPopulationSize
	}
	individuals := make([]Individual[A], size)
	for i := range individuals {
		individuals[i] = Individual[A]{Genome: builder.Build(rng)}
	}
	return &Population[A]{Individuals: individuals}, nil
}

// Size returns the number of individuals.
func (p *Population[A]) Size() int {
	return len(p.Individuals)
}

// Clone returns a deep copy of the population.
func (p *Population[A]) Clone() *Population[A] {
	individuals := make([]Individual[A], len(p.Individuals))
	for i, ind := range p.Individuals {
		individuals[i] = Individual[A]{
			Genome:    ind.Genome.Clone(),
			Fitness:   ind.Fitness,
			Evaluated: ind.Evaluated,
		}
	}
	return &Population[A]{Individuals: individuals}
}

// Evaluate applies fn to every individual whose fitness is unset.
// Genomes are never modified; already-evaluated individuals keep their
// fitness, so elite carry-overs are not re-scored.
func (p *Population[A]) Evaluate(fn FitnessFunc[A]) {
	for i := range p.Individuals {
		if p.Individuals[i].Evaluated {
			continue
		}
		p.Individuals[i].Fitness = fn(p.Individuals[i].Genome)
		p.Individuals[i].Evaluated = true
	}
}

// EvaluateParallel scores unevaluated individuals across at most workers
// goroutines. Results land at fixed indexes, so the population ordering is
// deterministic and independent of scheduling. The fitness function must
// be pure for this to be equivalent to Evaluate.
func (p *Population[A]) EvaluateParallel(ctx context.Context, fn FitnessFunc[A], workers int) error {
	if workers < 2 {
		p.Evaluate(fn)
		return nil
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range p.Individuals {
		if p.Individuals[i].Evaluated {
			continue
		}
		i := i
		g.Go(func() error {
			p.Individuals[i].Fitness = fn(p.Individuals[i].Genome)
			p.Individuals[i].Evaluated = true
			return nil
		})
	}
	return g.Wait()
}

// Best returns the individual with the highest fitness. Ties break toward
// the first occurrence, keeping the result stable and deterministic.
// Fails with ErrEmptyPopulation on an empty population.
func (p *Population[A]) Best() (Individual[A], error) {
	if len(p.Individuals) == 0 {
		return Individual[A]{}, ErrEmptyPopulation
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best, nil
}

// AverageFitness returns the mean fitness across all individuals,
// or 0 for an empty population.
func (p *Population[A]) AverageFitness() float64 {
	if len(p.Individuals) == 0 {
		return 0
	}
	return stat.Mean(p.fitnessValues(), nil)
}

// FitnessStdDev returns the population fitness standard deviation.
// Populations with fewer than two individuals report 0.
func (p *Population[A]) FitnessStdDev() float64 {
	if len(p.Individuals) < 2 {
		return 0
	}
	return stat.StdDev(p.fitnessValues(), nil)
}

func (p *Population[A]) fitnessValues() []float64 {
	values := make([]float64, len(p.Individuals))
	for i, ind := range p.Individuals {
		values[i] = ind.Fitness
	}
	return values
}

// Diversity estimates population diversity as the mean pairwise genome
// distance under the supplied metric. Small populations compare all pairs;
// large ones sample 100 random pairs to stay cheap.
func (p *Population[A]) Diversity(distance func(a, b Genotype[A]) float64, rng *rand.Rand) float64 {
	n := len(p.Individuals)
	if n < 2 {
		return 0
	}

	var total float64
	var pairs int
	if n <= 50 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				total += distance(p.Individuals[i].Genome, p.Individuals[j].Genome)
				pairs++
			}
		}
	} else {
		for k := 0; k < 100; k++ {
			i := rng.Intn(n)
			j := rng.Intn(n)
			if i == j {
				j = (i + 1) % n
			}
			total += distance(p.Individuals[i].Genome, p.Individuals[j].Genome)
			pairs++
		}
	}
	return total / float64(pairs)
}

// HammingDistance is a ready-made metric for Diversity over comparable
// gene types: the fraction of positions at which two genomes differ.
func HammingDistance[A comparable](a, b Genotype[A]) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	diff := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			diff++
		}
	}
	return float64(diff) / float64(n)
}
