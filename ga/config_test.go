package ga

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
[GA]
pop_size = 20
seed = 42
verbose = true
max_stagnation = 7

[DefaultGenotype]
genotype_length = 4
goal = 1011   ; fixed target

[DefaultReproduction]
top_n = 5
crossover_bias = 0.75
resolver_draws = 12
max_resolve_attempts = 50
`

func TestLoadConfigData_Full(t *testing.T) {
	cfg, err := LoadConfigData([]byte(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.GA.PopSize)
	assert.Equal(t, int64(42), cfg.GA.Seed)
	assert.True(t, cfg.GA.Verbose)
	assert.Equal(t, 7, cfg.GA.MaxStagnation)
	assert.Equal(t, 4, cfg.Genotype.Length)
	assert.Equal(t, "1011", cfg.Genotype.Goal)
	assert.Equal(t, 5, cfg.Reproduction.TopN)
	assert.Equal(t, 0.75, cfg.Reproduction.CrossoverBias)
	assert.Equal(t, 12, cfg.Reproduction.ResolverDraws)
	assert.Equal(t, 50, cfg.Reproduction.MaxResolveAttempts)
}

func TestLoadConfigData_Defaults(t *testing.T) {
	cfg, err := LoadConfigData([]byte("[DefaultGenotype]\ngenotype_length = 12\n"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 12, cfg.Genotype.Length)
	assert.Equal(t, def.GA, cfg.GA)
	assert.Equal(t, def.Reproduction, cfg.Reproduction)
	assert.Empty(t, cfg.Genotype.Goal)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ini")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GA.PopSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestLoadConfigData_BadNumber(t *testing.T) {
	_, err := LoadConfigData([]byte("[GA]\npop_size = lots\n"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero pop size", func(c *Config) { c.GA.PopSize = 0 }, "pop_size"},
		{"negative stagnation", func(c *Config) { c.GA.MaxStagnation = -1 }, "max_stagnation"},
		{"zero length", func(c *Config) { c.Genotype.Length = 0 }, "genotype_length"},
		{"bad goal", func(c *Config) { c.Genotype.Goal = "10a1" }, "goal"},
		{"goal too short", func(c *Config) { c.Genotype.Goal = "101" }, "goal"},
		{"zero top_n", func(c *Config) { c.Reproduction.TopN = 0 }, "top_n"},
		{"top_n above pop size", func(c *Config) { c.Reproduction.TopN = 101 }, "top_n"},
		{"negative bias", func(c *Config) { c.Reproduction.CrossoverBias = -0.1 }, "crossover_bias"},
		{"bias of one", func(c *Config) { c.Reproduction.CrossoverBias = 1 }, "crossover_bias"},
		{"zero draws", func(c *Config) { c.Reproduction.ResolverDraws = 0 }, "resolver_draws"},
		{"zero attempts", func(c *Config) { c.Reproduction.MaxResolveAttempts = 0 }, "max_resolve_attempts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig))

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestConfig_ValidateAcceptsDefaultsAndEdges(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Reproduction.TopN = cfg.GA.PopSize
	cfg.Reproduction.CrossoverBias = 0
	cfg.Genotype.Length = 4
	cfg.Genotype.Goal = "0110"
	assert.NoError(t, cfg.Validate())
}
