package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evolve/genetic"
)

func countTrue(g genetic.Genotype[bool]) float64 {
	total := 0.0
	for _, v := range g {
		if v {
			total++
		}
	}
	return total
}

// oneMaxBuilder returns a fully configured builder for the all-true
// boolean target problem.
func oneMaxBuilder(length int) *Builder[bool] {
	return NewBuilder[bool]().
		WithPopulationSize(20).
		WithGenomeBuilder(genetic.DomainGenomeBuilder[bool]{Length: length, Domain: genetic.BoolDomain{}}).
		WithSelector(genetic.TournamentSelector[bool]{Size: 3}).
		WithCrossover(genetic.UniformCrossBreeder[bool]{}).
		WithMutator(genetic.RandomValueMutator[bool]{Rate: 0.05, Domain: genetic.BoolDomain{}}).
		WithFitness(countTrue).
		WithTermination(GenerationLimit[bool](100))
}

func TestBuildValidConfiguration(t *testing.T) {
	engine, err := oneMaxBuilder(10).WithSeed(42).Build()
	require.NoError(t, err)

	assert.Equal(t, PhaseInitialized, engine.Phase())
	assert.Equal(t, uint64(0), engine.Generation())
	assert.Equal(t, int64(42), engine.Seed())
	assert.NotEmpty(t, engine.RunID())
	assert.Equal(t, 20, engine.Population().Size())
	assert.Zero(t, engine.ProcessingTime())
}

func TestBuildValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*Builder[bool]) *Builder[bool]
	}{
		{"zero population size", func(b *Builder[bool]) *Builder[bool] {
			return b.WithPopulationSize(0)
		}},
		{"missing genome builder", func(b *Builder[bool]) *Builder[bool] {
			return b.WithGenomeBuilder(nil)
		}},
		{"missing selector", func(b *Builder[bool]) *Builder[bool] {
			return b.WithSelector(nil)
		}},
		{"missing crossover", func(b *Builder[bool]) *Builder[bool] {
			return b.WithCrossover(nil)
		}},
		{"missing mutator", func(b *Builder[bool]) *Builder[bool] {
			return b.WithMutator(nil)
		}},
		{"missing fitness", func(b *Builder[bool]) *Builder[bool] {
			return b.WithFitness(nil)
		}},
		{"missing termination", func(b *Builder[bool]) *Builder[bool] {
			return b.WithTermination(nil)
		}},
		{"negative elitism", func(b *Builder[bool]) *Builder[bool] {
			return b.WithElitism(-1)
		}},
		{"elitism fills population", func(b *Builder[bool]) *Builder[bool] {
			return b.WithElitism(20)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.adjust(oneMaxBuilder(10)).Build()
			require.Error(t, err)
			assert.True(t, IsConfigError(err), "want ConfigError, got %T: %v", err, err)
		})
	}
}

func TestBuildGeneratesSeedWhenUnset(t *testing.T) {
	engine, err := oneMaxBuilder(10).Build()
	require.NoError(t, err)
	assert.NotZero(t, engine.Seed())
}

func TestBuildDistinctRunIDs(t *testing.T) {
	a, err := oneMaxBuilder(10).WithSeed(1).Build()
	require.NoError(t, err)
	b, err := oneMaxBuilder(10).WithSeed(1).Build()
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID(), b.RunID())
}
