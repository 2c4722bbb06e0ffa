package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evolve/genetic"
)

func resultAt(generation uint64, bestFitness float64) *StepResult[bool] {
	return &StepResult[bool]{
		Generation: generation,
		Best:       genetic.Individual[bool]{Fitness: bestFitness, Evaluated: true},
	}
}

func TestGenerationLimit(t *testing.T) {
	cond := GenerationLimit[bool](10)

	stop, err := cond(resultAt(9, 0))
	require.NoError(t, err)
	assert.False(t, stop)

	stop, err = cond(resultAt(10, 0))
	require.NoError(t, err)
	assert.True(t, stop)

	stop, err = cond(resultAt(11, 0))
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestGenerationLimitZeroErrors(t *testing.T) {
	_, err := GenerationLimit[bool](0)(resultAt(1, 0))
	require.Error(t, err)
}

func TestFitnessLimit(t *testing.T) {
	cond := FitnessLimit[bool](5)

	stop, err := cond(resultAt(1, 4.9))
	require.NoError(t, err)
	assert.False(t, stop)

	stop, err = cond(resultAt(1, 5))
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestOrStopsOnAny(t *testing.T) {
	cond := Or(GenerationLimit[bool](100), FitnessLimit[bool](5))

	stop, err := cond(resultAt(1, 5))
	require.NoError(t, err)
	assert.True(t, stop)

	stop, err = cond(resultAt(100, 0))
	require.NoError(t, err)
	assert.True(t, stop)

	stop, err = cond(resultAt(1, 0))
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestAndNeedsAll(t *testing.T) {
	cond := And(GenerationLimit[bool](10), FitnessLimit[bool](5))

	stop, err := cond(resultAt(10, 0))
	require.NoError(t, err)
	assert.False(t, stop)

	stop, err = cond(resultAt(10, 5))
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestAndEmptyNeverStops(t *testing.T) {
	stop, err := And[bool]()(resultAt(1000, 1000))
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestCombinatorsPropagateErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := Termination[bool](func(*StepResult[bool]) (bool, error) {
		return false, boom
	})

	_, err := Or(failing, FitnessLimit[bool](1))(resultAt(1, 0))
	require.ErrorIs(t, err, boom)

	_, err = And(failing, FitnessLimit[bool](1))(resultAt(1, 0))
	require.ErrorIs(t, err, boom)
}
