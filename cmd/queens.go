// Package cmd - N-Queens Scenario
// Places N queens on an NxN board with no two attacking. The genome is a
// permutation: column i holds a queen at row genome[i], so row and column
// conflicts are impossible by construction and fitness only needs to
// count diagonal attacks.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Connerlevi/evolve/genetic"
	"github.com/Connerlevi/evolve/simulation"
)

var queensBoardSize int

var queensCmd = &cobra.Command{
	Use:   "queens",
	Short: "Solve the N-queens puzzle with permutation operators",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := queensBoardSize
		maxPairs := float64(n*(n-1)) / 2

		fitness := func(g genetic.Genotype[int]) float64 {
			attacks := 0
			for i := 0; i < len(g); i++ {
				for j := i + 1; j < len(g); j++ {
					if j-i == g[j]-g[i] || j-i == g[i]-g[j] {
						attacks++
					}
				}
			}
			return maxPairs - float64(attacks)
		}

		// Swap mutation applies per genome, not per gene, so the
		// configured per-gene rate scales up.
		swapRate := cfg.Run.MutationRate * 10
		if swapRate > 1 {
			swapRate = 1
		}

		builder := simulation.NewBuilder[int]().
			WithGenomeBuilder(genetic.PermutationGenomeBuilder{Length: n}).
			WithSelector(genetic.RankSelector[int]{Pressure: 1.7}).
			WithCrossover(genetic.PartiallyMappedCrossover[int]{}).
			WithMutator(genetic.SwapMutator[int]{Rate: swapRate}).
			WithFitness(fitness).
			WithTermination(simulation.Or(
				simulation.GenerationLimit[int](cfg.Run.MaxGenerations),
				simulation.FitnessLimit[int](maxPairs),
			))

		engine, err := applyRunConfig(builder, cfg.Run, logger).Build()
		if err != nil {
			return err
		}

		result, err := runScenario(cmd.Context(), "queens", engine)
		if err != nil {
			return err
		}

		solved := result.Best.Fitness == maxPairs
		logger.Info("queens result",
			zap.Bool("solved", solved),
			zap.Int("board_size", n),
			zap.Float64("attacking_pairs", maxPairs-result.Best.Fitness))
		if solved {
			fmt.Fprintln(cmd.OutOrStdout(), renderBoard(result.Best.Genome))
		}
		return nil
	},
}

// renderBoard draws the placement, one queen per column.
func renderBoard(g genetic.Genotype[int]) string {
	var sb strings.Builder
	for row := 0; row < len(g); row++ {
		for col := 0; col < len(g); col++ {
			if g[col] == row {
				sb.WriteString("Q ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func init() {
	queensCmd.Flags().IntVar(&queensBoardSize, "board-size", 8, "board dimension N")
	queensCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if queensBoardSize < 4 {
			return fmt.Errorf("board size must be at least 4, got %d", queensBoardSize)
		}
		return nil
	}
	rootCmd.AddCommand(queensCmd)
}
