// Package cmd - Shared Scenario Runner
package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Connerlevi/evolve/internal/config"
	"github.com/Connerlevi/evolve/internal/observability"
	"github.com/Connerlevi/evolve/simulation"
)

// applyRunConfig copies the shared run parameters into a scenario's builder.
func applyRunConfig[A any](b *simulation.Builder[A], run config.RunConfig, log *zap.Logger) *simulation.Builder[A] {
	b.WithPopulationSize(run.PopulationSize).
		WithElitism(run.Elitism).
		WithEvaluationWorkers(run.EvalWorkers).
		WithLogger(log)
	if run.Seed != 0 {
		b.WithSeed(run.Seed)
	}
	return b
}

// runScenario steps the engine to termination, feeding metrics when
// enabled, and returns the final step result.
func runScenario[A any](ctx context.Context, scenario string, engine *simulation.Engine[A]) (*simulation.StepResult[A], error) {
	var metrics *observability.RunMetrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewRunMetrics()
		srv := metrics.Serve(cfg.Metrics.Listen)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("metrics endpoint up", zap.String("listen", cfg.Metrics.Listen))
	}

	logger.Info("scenario starting",
		zap.String("scenario", scenario),
		zap.String("run_id", engine.RunID()),
		zap.Int64("seed", engine.Seed()))

	var last *simulation.StepResult[A]
	for {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		result, err := engine.Step(ctx)
		if err != nil {
			return last, err
		}
		if metrics != nil {
			metrics.ObserveStep(scenario, result.Generation,
				result.Best.Fitness, result.AverageFitness, result.StepDuration)
		}
		last = result
		if result.Terminated {
			break
		}
	}

	logger.Info("scenario finished",
		zap.String("scenario", scenario),
		zap.Uint64("generations", last.Generation),
		zap.Float64("best_fitness", last.Best.Fitness),
		zap.Float64("avg_fitness", last.AverageFitness),
		zap.Duration("total_time", last.TotalDuration))
	return last, nil
}
