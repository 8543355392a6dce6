package ga

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() *Config {
	cfg := DefaultConfig()
	cfg.GA.PopSize = 20
	cfg.Genotype.Length = 4
	cfg.Genotype.Goal = "1011"
	cfg.Reproduction.TopN = 5
	cfg.Reproduction.CrossoverBias = 0.6
	return cfg
}

func TestPopulation_FindsFixedGoal(t *testing.T) {
	pop, err := NewPopulation(smallConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	pop.Output = io.Discard

	var result *Result
	for i := 0; i < 500 && result == nil; i++ {
		result, err = pop.RunGeneration()
		require.NoError(t, err)
	}
	require.NotNil(t, result, "goal not found within 500 generations")

	assert.Equal(t, []int{1, 0, 1, 1}, result.Genotype.Bits())
	assert.Equal(t, []int{1, 0, 1, 1}, result.Goal.Bits())
	assert.GreaterOrEqual(t, result.Generation, 0)
	assert.Less(t, result.Generation, 500)
	assert.True(t, pop.Members[result.ID].Equal(result.Genotype))
	assert.True(t, pop.Solved())

	again, err := pop.RunGeneration()
	require.NoError(t, err)
	assert.Same(t, result, again)
	assert.Equal(t, result.Generation, pop.Generation)
}

func TestPopulation_SameSeedSameRun(t *testing.T) {
	run := func() *Result {
		cfg := smallConfig()
		cfg.Genotype.Goal = ""
		cfg.Genotype.Length = 8
		pop, err := NewPopulation(cfg, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		pop.Output = io.Discard
		for i := 0; i < 500; i++ {
			result, err := pop.RunGeneration()
			require.NoError(t, err)
			if result != nil {
				return result
			}
		}
		return nil
	}

	first, second := run(), run()
	if first == nil {
		assert.Nil(t, second)
		return
	}
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Generation, second.Generation)
	assert.True(t, first.Goal.Equal(second.Goal))
}

func TestPopulation_SingleMemberIsDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GA.PopSize = 1
	cfg.Reproduction.TopN = 1
	cfg.Genotype.Length = 32

	pop, err := NewPopulation(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	pop.Output = io.Discard

	result, err := pop.Run()
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateSelection))
	assert.Equal(t, 0, pop.Generation)
}

func TestPopulation_GenerationReplacesMembers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GA.PopSize = 30
	cfg.Reproduction.TopN = 4
	cfg.Genotype.Length = 96

	pop, err := NewPopulation(cfg, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	pop.Output = io.Discard
	before := pop.Members

	result, err := pop.RunGeneration()
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 1, pop.Generation)
	require.Len(t, pop.Members, 30)
	for id := 0; id < 30; id++ {
		require.Contains(t, pop.Members, id)
		assert.Equal(t, 96, pop.Members[id].Len())
	}
	assert.Len(t, before, 30, "previous generation map is left untouched")
	assert.Len(t, pop.Reproduction.Ancestors, 30)
}

func TestPopulation_VerboseProgress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GA.Verbose = true
	cfg.Genotype.Length = 64

	pop, err := NewPopulation(cfg, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	var buf bytes.Buffer
	pop.Output = &buf

	_, err = pop.RunGeneration()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Generation 0: best ")
}

func TestNewPopulation_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reproduction.TopN = cfg.GA.PopSize + 1
	_, err := NewPopulation(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewPopulation_RandomGoalLength(t *testing.T) {
	cfg := DefaultConfig()
	pop, err := NewPopulation(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, cfg.Genotype.Length, pop.Goal.Len())
	assert.Len(t, pop.Members, cfg.GA.PopSize)
	assert.Equal(t, 0, pop.Generation)
}

func TestResult_String(t *testing.T) {
	g, _ := ParseGenotype("1011")
	r := &Result{ID: 3, Genotype: g, Goal: g, Generation: 12}
	assert.Equal(t, "ID: 3\nGenotype: [1 0 1 1]\nGoal Genotype: [1 0 1 1]\nGeneration: 12", r.String())
}
