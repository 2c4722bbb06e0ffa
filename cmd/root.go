// Package cmd wires the evolve CLI: configuration, logging, metrics, and
// the demo scenario subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Connerlevi/evolve/internal/config"
	"github.com/Connerlevi/evolve/internal/observability"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "evolve",
	Short: "evolve runs genetic-algorithm demo scenarios",
	Long: `evolve is a demonstration harness for the evolution engine.
Each subcommand assembles a run from configuration, steps it to
termination, and reports the winning genome.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)

		logger, err = observability.NewLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default ./evolve.yaml)")
	pf.Int("population", 0, "population size (overrides config)")
	pf.Uint64("generations", 0, "generation limit (overrides config)")
	pf.Float64("mutation-rate", -1, "per-gene mutation probability (overrides config)")
	pf.Int64("seed", 0, "random seed; 0 derives one from the clock")
	pf.Int("elitism", -1, "individuals carried over unchanged (overrides config)")
	pf.Int("workers", 0, "fitness evaluation goroutines (overrides config)")
	pf.Bool("metrics", false, "serve Prometheus metrics during the run")
	pf.String("metrics-listen", "", "metrics listen address (overrides config)")
}

// applyFlagOverrides folds explicitly set flags into the loaded config.
func applyFlagOverrides(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("population") {
		cfg.Run.PopulationSize, _ = f.GetInt("population")
	}
	if f.Changed("generations") {
		cfg.Run.MaxGenerations, _ = f.GetUint64("generations")
	}
	if f.Changed("mutation-rate") {
		cfg.Run.MutationRate, _ = f.GetFloat64("mutation-rate")
	}
	if f.Changed("seed") {
		cfg.Run.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("elitism") {
		cfg.Run.Elitism, _ = f.GetInt("elitism")
	}
	if f.Changed("workers") {
		cfg.Run.EvalWorkers, _ = f.GetInt("workers")
	}
	if f.Changed("metrics") {
		cfg.Metrics.Enabled, _ = f.GetBool("metrics")
	}
	if f.Changed("metrics-listen") {
		cfg.Metrics.Listen, _ = f.GetString("metrics-listen")
	}
}
