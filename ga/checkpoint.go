package ga

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"math/rand"
	"os"
)

// PopulationSaveData is the on-disk form of a Population.
// Genotypes are stored as bit strings. The config is not saved; it is
// reloaded from the original file.
type PopulationSaveData struct {
	Members    map[int]string
	Goal       string
	Generation int
	Ancestors  map[int][2]int
}

// SaveCheckpoint saves the current state of the Population to a gzip-compressed file.
func (p *Population) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	saveData := PopulationSaveData{
		Members:    make(map[int]string, len(p.Members)),
		Goal:       p.Goal.String(),
		Generation: p.Generation,
		Ancestors:  p.Reproduction.Ancestors,
	}
	for id, g := range p.Members {
		saveData.Members[id] = g.String()
	}

	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush checkpoint '%s': %w", filePath, err)
	}

	p.printf("Checkpoint saved to %s\n", filePath)
	return nil
}

// LoadCheckpoint loads a Population state from a checkpoint file.
// configPath may be empty to use DefaultConfig. The restored run continues
// drawing from rng (seeded from the config when nil).
func LoadCheckpoint(checkpointPath, configPath string, rng *rand.Rand) (*Population, error) {
	config := DefaultConfig()
	if configPath != "" {
		var err error
		config, err = LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config '%s' for checkpoint: %w", configPath, err)
		}
	}

	file, err := os.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", checkpointPath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := PopulationSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	return restorePopulation(config, &saveData, rng)
}

func restorePopulation(config *Config, saveData *PopulationSaveData, rng *rand.Rand) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(saveData.Members) != config.GA.PopSize {
		return nil, fmt.Errorf("checkpoint holds %d members, pop_size is %d", len(saveData.Members), config.GA.PopSize)
	}

	goal, err := ParseGenotype(saveData.Goal)
	if err != nil {
		return nil, fmt.Errorf("checkpoint goal: %w", err)
	}
	if err := checkLength(goal.Len(), config.Genotype.Length); err != nil {
		return nil, fmt.Errorf("checkpoint goal: %w", err)
	}

	members := make(map[int]Genotype, len(saveData.Members))
	for id := 0; id < config.GA.PopSize; id++ {
		s, ok := saveData.Members[id]
		if !ok {
			return nil, fmt.Errorf("checkpoint is missing member %d", id)
		}
		g, err := ParseGenotype(s)
		if err != nil {
			return nil, fmt.Errorf("checkpoint member %d: %w", id, err)
		}
		if err := checkLength(g.Len(), goal.Len()); err != nil {
			return nil, fmt.Errorf("checkpoint member %d: %w", id, err)
		}
		members[id] = g
	}

	if rng == nil {
		rng = NewRand(config.GA.Seed)
	}
	reproduction := NewReproduction(&config.Reproduction, rng)
	if saveData.Ancestors != nil {
		reproduction.Ancestors = saveData.Ancestors
	}

	p := &Population{
		Config:       config,
		Members:      members,
		Goal:         goal,
		Generation:   saveData.Generation,
		Reproduction: reproduction,
		Stagnation:   NewStagnation(&config.GA),
		Output:       os.Stdout,
		rng:          rng,
	}
	p.Stagnation.LastImproved = saveData.Generation

	p.printf("Checkpoint loaded (Generation %d)\n", p.Generation)
	return p, nil
}
