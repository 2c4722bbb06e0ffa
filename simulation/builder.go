// Package simulation - Run Builder
// Assembles one reproducible run: genome factory, population size,
// operator instances, fitness function, termination condition, and the
// random seed. Build validates everything up front and fails with a
// ConfigError rather than letting a half-configured engine step.
package simulation

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Connerlevi/evolve/genetic"
)

// Builder accumulates engine configuration. Setters chain; Build is the
// single validation point.
type Builder[A any] struct {
	popSize     int
	elitism     int
	evalWorkers int
	seed        int64
	seedSet     bool
	logger      *zap.Logger

	genomes   genetic.GenomeBuilder[A]
	selector  genetic.Selector[A]
	crossover genetic.Crossover[A]
	mutator   genetic.Mutator[A]
	fitness   genetic.FitnessFunc[A]
	terminate Termination[A]
}

// NewBuilder returns a builder with nothing configured except defaults:
// single-threaded evaluation, no elitism, a no-op logger, and a
// process-derived seed unless WithSeed is called.
func NewBuilder[A any]() *Builder[A] {
	return &Builder[A]{
		evalWorkers: 1,
		logger:      zap.NewNop(),
	}
}

// WithPopulationSize sets the fixed population size.
func (b *Builder[A]) WithPopulationSize(size int) *Builder[A] {
	b.popSize = size
	return b
}

// WithGenomeBuilder sets the initial-population genome factory.
func (b *Builder[A]) WithGenomeBuilder(gb genetic.GenomeBuilder[A]) *Builder[A] {
	b.genomes = gb
	return b
}

// WithSelector sets the parent selection strategy.
func (b *Builder[A]) WithSelector(s genetic.Selector[A]) *Builder[A] {
	b.selector = s
	return b
}

// WithCrossover sets the recombination operator.
func (b *Builder[A]) WithCrossover(c genetic.Crossover[A]) *Builder[A] {
	b.crossover = c
	return b
}

// WithMutator sets the mutation operator.
func (b *Builder[A]) WithMutator(m genetic.Mutator[A]) *Builder[A] {
	b.mutator = m
	return b
}

// WithFitness sets the fitness function. Higher is better; the function
// must be pure.
func (b *Builder[A]) WithFitness(fn genetic.FitnessFunc[A]) *Builder[A] {
	b.fitness = fn
	return b
}

// WithTermination sets the stop condition, checked after every step.
func (b *Builder[A]) WithTermination(t Termination[A]) *Builder[A] {
	b.terminate = t
	return b
}

// WithSeed fixes the random seed. Two engines built with the same seed and
// configuration replay the identical run. Without it the seed derives from
// the clock at build time.
func (b *Builder[A]) WithSeed(seed int64) *Builder[A] {
	b.seed = seed
	b.seedSet = true
	return b
}

// WithElitism carries the count fittest individuals into each new
// generation unchanged.
func (b *Builder[A]) WithElitism(count int) *Builder[A] {
	b.elitism = count
	return b
}

// WithEvaluationWorkers bounds the goroutines used for fitness
// evaluation. Values below 2 keep evaluation sequential.
func (b *Builder[A]) WithEvaluationWorkers(workers int) *Builder[A] {
	b.evalWorkers = workers
	return b
}

// WithLogger sets the run logger. The default discards everything.
func (b *Builder[A]) WithLogger(logger *zap.Logger) *Builder[A] {
	b.logger = logger
	return b
}

// Build validates the configuration, samples the initial population, and
// returns an engine in the initialized phase.
func (b *Builder[A]) Build() (*Engine[A], error) {
	if b.popSize < 1 {
		return nil, &ConfigError{Field: "population size", Reason: "must be at least 1"}
	}
	if b.genomes == nil {
		return nil, &ConfigError{Field: "genome builder", Reason: "not set"}
	}
	if b.selector == nil {
		return nil, &ConfigError{Field: "selector", Reason: "not set"}
	}
	if b.crossover == nil {
		return nil, &ConfigError{Field: "crossover", Reason: "not set"}
	}
	if b.mutator == nil {
		return nil, &ConfigError{Field: "mutator", Reason: "not set"}
	}
	if b.fitness == nil {
		return nil, &ConfigError{Field: "fitness function", Reason: "not set"}
	}
	if b.terminate == nil {
		return nil, &ConfigError{Field: "termination condition", Reason: "not set"}
	}
	if b.elitism < 0 {
		return nil, &ConfigError{Field: "elitism", Reason: "must not be negative"}
	}
	if b.elitism >= b.popSize {
		return nil, &ConfigError{Field: "elitism", Reason: "must leave room for at least one offspring"}
	}

	seed := b.seed
	if !b.seedSet {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	population, err := genetic.NewRandomPopulation(b.popSize, b.genomes, rng)
	if err != nil {
		return nil, &ConfigError{Field: "population size", Reason: err.Error()}
	}

	genomeLen := len(population.Individuals[0].Genome)
	for _, ind := range population.Individuals {
		if len(ind.Genome) != genomeLen {
			return nil, &ConfigError{Field: "genome builder", Reason: "produced genomes of differing lengths"}
		}
	}

	return &Engine[A]{
		runID:       uuid.NewString(),
		seed:        seed,
		rng:         rng,
		logger:      b.logger,
		popSize:     b.popSize,
		genomeLen:   genomeLen,
		elitism:     b.elitism,
		evalWorkers: b.evalWorkers,
		selector:    b.selector,
		crossover:   b.crossover,
		mutator:     b.mutator,
		fitness:     b.fitness,
		terminate:   b.terminate,
		phase:       PhaseInitialized,
		population:  population,
	}, nil
}
