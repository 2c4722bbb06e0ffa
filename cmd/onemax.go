// Package cmd - OneMax Scenario
// Maximizes the count of true genes in a boolean genome. The classic
// smoke-test problem: any working engine solves it quickly.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Connerlevi/evolve/genetic"
	"github.com/Connerlevi/evolve/simulation"
)

var onemaxLength int

var onemaxCmd = &cobra.Command{
	Use:   "onemax",
	Short: "Evolve a boolean genome toward all-true",
	RunE: func(cmd *cobra.Command, args []string) error {
		fitness := func(g genetic.Genotype[bool]) float64 {
			score := 0.0
			for _, v := range g {
				if v {
					score++
				}
			}
			return score
		}

		builder := simulation.NewBuilder[bool]().
			WithGenomeBuilder(genetic.DomainGenomeBuilder[bool]{
				Length: onemaxLength,
				Domain: genetic.BoolDomain{},
			}).
			WithSelector(genetic.TournamentSelector[bool]{Size: 3}).
			WithCrossover(genetic.UniformCrossBreeder[bool]{}).
			WithMutator(genetic.RandomValueMutator[bool]{
				Rate:   cfg.Run.MutationRate,
				Domain: genetic.BoolDomain{},
			}).
			WithFitness(fitness).
			WithTermination(simulation.Or(
				simulation.GenerationLimit[bool](cfg.Run.MaxGenerations),
				simulation.FitnessLimit[bool](float64(onemaxLength)),
			))

		engine, err := applyRunConfig(builder, cfg.Run, logger).Build()
		if err != nil {
			return err
		}

		result, err := runScenario(cmd.Context(), "onemax", engine)
		if err != nil {
			return err
		}

		solved := result.Best.Fitness == float64(onemaxLength)
		logger.Info("onemax result",
			zap.Bool("solved", solved),
			zap.String("genome", formatBools(result.Best.Genome)))
		return nil
	},
}

func formatBools(g genetic.Genotype[bool]) string {
	out := make([]byte, len(g))
	for i, v := range g {
		if v {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

func init() {
	onemaxCmd.Flags().IntVar(&onemaxLength, "length", 32, "genome length")
	onemaxCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if onemaxLength < 1 {
			return fmt.Errorf("length must be at least 1, got %d", onemaxLength)
		}
		return nil
	}
	rootCmd.AddCommand(onemaxCmd)
}
