package ga

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for a run.
type Config struct {
	GA           GAConfig
	Genotype     GenotypeConfig
	Reproduction ReproductionConfig
}

// GAConfig holds parameters for the generation loop itself.
type GAConfig struct {
	PopSize       int   `ini:"pop_size"`
	Seed          int64 `ini:"seed"` // 0 picks a seed at startup
	Verbose       bool  `ini:"verbose"`
	MaxStagnation int   `ini:"max_stagnation"` // generations without improvement before a warning
}

// GenotypeConfig holds parameters for genotypes and the goal.
type GenotypeConfig struct {
	Length int    `ini:"genotype_length"`
	Goal   string `ini:"goal"` // optional fixed goal, e.g. "1011"
}

// ReproductionConfig holds parameters for selection and breeding.
type ReproductionConfig struct {
	TopN               int     `ini:"top_n"`
	CrossoverBias      float64 `ini:"crossover_bias"` // P(1) of each resolver draw
	ResolverDraws      int     `ini:"resolver_draws"`
	MaxResolveAttempts int     `ini:"max_resolve_attempts"`
}

// Inline "; comment" and "# comment" are stripped from values.
var loadOptions = ini.LoadOptions{
	UnescapeValueCommentSymbols: true,
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		GA: GAConfig{
			PopSize:       100,
			MaxStagnation: 50,
		},
		Genotype: GenotypeConfig{
			Length: 20,
		},
		Reproduction: ReproductionConfig{
			TopN:               10,
			CrossoverBias:      0.6,
			ResolverDraws:      DefaultResolverDraws,
			MaxResolveAttempts: DefaultMaxResolveAttempts,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(loadOptions, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return parseConfig(cfg)
}

// LoadConfigData is LoadConfig for in-memory INI content.
func LoadConfigData(data []byte) (*Config, error) {
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return parseConfig(cfg)
}

func parseConfig(cfg *ini.File) (*Config, error) {
	config := DefaultConfig()

	if err := cfg.Section("GA").StrictMapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("DefaultGenotype").StrictMapTo(&config.Genotype); err != nil {
		return nil, fmt.Errorf("failed to map [DefaultGenotype] section: %w", err)
	}
	if err := cfg.Section("DefaultReproduction").StrictMapTo(&config.Reproduction); err != nil {
		return nil, fmt.Errorf("failed to map [DefaultReproduction] section: %w", err)
	}

	config.Genotype.Goal = strings.TrimSpace(config.Genotype.Goal)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration can start a run.
// Every failure is a *ConfigError.
func (c *Config) Validate() error {
	if c.GA.PopSize <= 0 {
		return &ConfigError{Field: "pop_size", Reason: "must be positive"}
	}
	if c.GA.MaxStagnation < 0 {
		return &ConfigError{Field: "max_stagnation", Reason: "cannot be negative"}
	}
	if c.Genotype.Length <= 0 {
		return &ConfigError{Field: "genotype_length", Reason: "must be positive"}
	}
	if c.Genotype.Goal != "" {
		goal, err := ParseGenotype(c.Genotype.Goal)
		if err != nil {
			return &ConfigError{Field: "goal", Reason: err.Error()}
		}
		if goal.Len() != c.Genotype.Length {
			return &ConfigError{Field: "goal", Reason: fmt.Sprintf("has %d genes, genotype_length is %d", goal.Len(), c.Genotype.Length)}
		}
	}
	if c.Reproduction.TopN <= 0 {
		return &ConfigError{Field: "top_n", Reason: "must be positive"}
	}
	if c.Reproduction.TopN > c.GA.PopSize {
		return &ConfigError{Field: "top_n", Reason: fmt.Sprintf("cannot exceed pop_size (%d > %d)", c.Reproduction.TopN, c.GA.PopSize)}
	}
	if c.Reproduction.CrossoverBias < 0 || c.Reproduction.CrossoverBias >= 1 {
		return &ConfigError{Field: "crossover_bias", Reason: "must be in [0, 1)"}
	}
	if c.Reproduction.ResolverDraws <= 0 {
		return &ConfigError{Field: "resolver_draws", Reason: "must be positive"}
	}
	if c.Reproduction.MaxResolveAttempts <= 0 {
		return &ConfigError{Field: "max_resolve_attempts", Reason: "must be positive"}
	}
	return nil
}
