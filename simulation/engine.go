// Package simulation - Generational Engine
// The engine owns one run: a population, a deterministic random source,
// and the operator set chosen at build time. Each Step produces the next
// generation and reports its statistics along with per-step and cumulative
// processing time. The run is terminal once the termination condition
// holds or an unrecoverable error occurs.
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Connerlevi/evolve/genetic"
)

// Phase is the lifecycle state of one run.
type Phase int

const (
	// PhaseInitialized: generation 0, population sampled but not yet scored.
	PhaseInitialized Phase = iota
	// PhaseReady: initial population evaluated, no generation produced yet.
	PhaseReady
	// PhaseStepped: at least one generation completed.
	PhaseStepped
	// PhaseTerminated: termination condition satisfied.
	PhaseTerminated
	// PhaseFailed: unrecoverable error; the run cannot continue.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseReady:
		return "ready"
	case PhaseStepped:
		return "stepped"
	case PhaseTerminated:
		return "terminated"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// StepResult is the immutable snapshot returned after every step.
type StepResult[A any] struct {
	// Generation is the counter after the step, starting at 1.
	Generation uint64

	// Best is the fittest individual of the new population.
	Best genetic.Individual[A]

	// AverageFitness and FitnessStdDev summarize the new population.
	AverageFitness float64
	FitnessStdDev  float64

	// StepDuration is the wall time this step consumed; TotalDuration is
	// the running sum across the whole run. The total only grows.
	StepDuration  time.Duration
	TotalDuration time.Duration

	// Terminated is true when this step satisfied the termination
	// condition; further steps will be rejected.
	Terminated bool
}

// Engine drives one evolutionary run. It is not safe for concurrent use;
// one run belongs to one goroutine.
type Engine[A any] struct {
	runID  string
	seed   int64
	rng    *rand.Rand
	logger *zap.Logger

	popSize     int
	genomeLen   int
	elitism     int
	evalWorkers int

	selector  genetic.Selector[A]
	crossover genetic.Crossover[A]
	mutator   genetic.Mutator[A]
	fitness   genetic.FitnessFunc[A]
	terminate Termination[A]

	phase      Phase
	generation uint64
	population *genetic.Population[A]
	elapsed    time.Duration
}

// RunID identifies this run in logs and metrics.
func (e *Engine[A]) RunID() string { return e.runID }

// Seed returns the seed the run's random source was created from.
// Two engines built with the same seed and configuration produce
// identical populations generation for generation.
func (e *Engine[A]) Seed() int64 { return e.seed }

// Phase returns the current lifecycle phase.
func (e *Engine[A]) Phase() Phase { return e.phase }

// Generation returns the number of completed generations.
func (e *Engine[A]) Generation() uint64 { return e.generation }

// ProcessingTime returns the cumulative wall time spent inside steps.
func (e *Engine[A]) ProcessingTime() time.Duration { return e.elapsed }

// Population returns a deep copy of the current population, so callers
// can inspect it without aliasing the engine's run state.
func (e *Engine[A]) Population() *genetic.Population[A] {
	return e.population.Clone()
}

// Step produces the next generation: select parents, recombine, mutate,
// evaluate, replace, then check termination. The first call also performs
// the initial population evaluation. Stepping a terminated run returns
// ErrTerminated and a failed run ErrFailed, both without side effects.
func (e *Engine[A]) Step(ctx context.Context) (*StepResult[A], error) {
	switch e.phase {
	case PhaseTerminated:
		return nil, ErrTerminated
	case PhaseFailed:
		return nil, ErrFailed
	}

	start := time.Now()

	if e.phase == PhaseInitialized {
		if err := e.population.EvaluateParallel(ctx, e.fitness, e.evalWorkers); err != nil {
			return nil, e.fail(err)
		}
		e.phase = PhaseReady
		e.logger.Debug("initial population evaluated",
			zap.String("run_id", e.runID),
			zap.Int("population", e.population.Size()))
	}

	next, err := e.nextGeneration(ctx)
	if err != nil {
		return nil, e.fail(err)
	}
	if next.Size() == 0 {
		return nil, e.fail(ErrPopulationCollapsed)
	}

	e.population = next
	e.generation++
	e.phase = PhaseStepped

	stepTime := time.Since(start)
	e.elapsed += stepTime

	best, err := e.population.Best()
	if err != nil {
		return nil, e.fail(err)
	}

	result := &StepResult[A]{
		Generation:     e.generation,
		Best:           best,
		AverageFitness: e.population.AverageFitness(),
		FitnessStdDev:  e.population.FitnessStdDev(),
		StepDuration:   stepTime,
		TotalDuration:  e.elapsed,
	}

	stop, err := e.terminate(result)
	if err != nil {
		return nil, e.fail(fmt.Errorf("termination condition: %w", err))
	}
	if stop {
		e.phase = PhaseTerminated
		result.Terminated = true
	}

	e.logger.Debug("generation complete",
		zap.String("run_id", e.runID),
		zap.Uint64("generation", result.Generation),
		zap.Float64("best_fitness", result.Best.Fitness),
		zap.Float64("avg_fitness", result.AverageFitness),
		zap.Duration("step_time", result.StepDuration),
		zap.Stringer("phase", e.phase))

	return result, nil
}

// Run steps until the run terminates, fails, or ctx is cancelled,
// returning the final step's result.
func (e *Engine[A]) Run(ctx context.Context) (*StepResult[A], error) {
	switch e.phase {
	case PhaseTerminated:
		return nil, ErrTerminated
	case PhaseFailed:
		return nil, ErrFailed
	}

	e.logger.Info("run starting",
		zap.String("run_id", e.runID),
		zap.Int64("seed", e.seed),
		zap.Int("population", e.popSize),
		zap.String("selector", e.selector.Name()),
		zap.String("crossover", e.crossover.Name()),
		zap.String("mutator", e.mutator.Name()))

	var last *StepResult[A]
	for e.phase != PhaseTerminated {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		result, err := e.Step(ctx)
		if err != nil {
			return last, err
		}
		last = result
	}

	e.logger.Info("run terminated",
		zap.String("run_id", e.runID),
		zap.Uint64("generations", e.generation),
		zap.Float64("best_fitness", last.Best.Fitness),
		zap.Duration("total_time", last.TotalDuration))
	return last, nil
}

// nextGeneration builds the replacement population: elite carry-overs plus
// mutated offspring of selected parents.
func (e *Engine[A]) nextGeneration(ctx context.Context) (*genetic.Population[A], error) {
	offspringCount := e.popSize - e.elitism

	// Pairs of parents yield pairs of children; round up and trim.
	parentCount := offspringCount
	if parentCount%2 != 0 {
		parentCount++
	}
	parents, err := e.selector.Select(e.population, parentCount, e.rng)
	if err != nil {
		return nil, fmt.Errorf("selection (%s): %w", e.selector.Name(), err)
	}

	offspring := make([]genetic.Individual[A], 0, e.popSize)
	for i := 0; i+1 < len(parents) && len(offspring) < offspringCount; i += 2 {
		c1, c2, err := e.crossover.Cross(parents[i].Genome, parents[i+1].Genome, e.rng)
		if err != nil {
			return nil, fmt.Errorf("crossover (%s): %w", e.crossover.Name(), err)
		}
		for _, child := range []genetic.Genotype[A]{c1, c2} {
			if len(offspring) >= offspringCount {
				break
			}
			mutant := e.mutator.Mutate(child, e.rng)
			if len(mutant) != e.genomeLen {
				return nil, fmt.Errorf("%w: %s produced length %d, want %d",
					ErrGenomeShapeViolation, e.mutator.Name(), len(mutant), e.genomeLen)
			}
			offspring = append(offspring, genetic.Individual[A]{Genome: mutant})
		}
	}

	next := &genetic.Population[A]{Individuals: offspring}
	if err := next.EvaluateParallel(ctx, e.fitness, e.evalWorkers); err != nil {
		return nil, fmt.Errorf("fitness evaluation: %w", err)
	}

	if e.elitism > 0 {
		next.Individuals = append(e.elite(), next.Individuals...)
	}
	return next, nil
}

// elite returns clones of the fittest individuals of the current
// population, already evaluated so they are never re-scored.
func (e *Engine[A]) elite() []genetic.Individual[A] {
	ranked := make([]genetic.Individual[A], len(e.population.Individuals))
	copy(ranked, e.population.Individuals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})

	count := e.elitism
	if count > len(ranked) {
		count = len(ranked)
	}
	carried := make([]genetic.Individual[A], count)
	for i := 0; i < count; i++ {
		carried[i] = genetic.Individual[A]{
			Genome:    ranked[i].Genome.Clone(),
			Fitness:   ranked[i].Fitness,
			Evaluated: true,
		}
	}
	return carried
}

// fail moves the engine to the failed phase and wraps err with the
// generation the step was producing.
func (e *Engine[A]) fail(err error) error {
	e.phase = PhaseFailed
	simErr := &SimError{Generation: e.generation + 1, Err: err}
	e.logger.Error("run failed",
		zap.String("run_id", e.runID),
		zap.Uint64("generation", simErr.Generation),
		zap.Error(err))
	return simErr
}
