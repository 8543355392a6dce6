package ga

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Result is the terminal report of a solved run.
type Result struct {
	ID         int      // id of the matching member in its generation
	Genotype   Genotype // the matching genotype, equal to Goal
	Goal       Genotype
	Generation int // generations bred before the match; 0 if the first population matched
}

func (r *Result) String() string {
	return fmt.Sprintf("ID: %d\nGenotype: %v\nGoal Genotype: %v\nGeneration: %d",
		r.ID, r.Genotype.Bits(), r.Goal.Bits(), r.Generation)
}

// Population holds the state of one evolutionary run.
type Population struct {
	Config       *Config
	Members      map[int]Genotype // current generation, ids 0..PopSize-1
	Goal         Genotype
	Generation   int
	Reproduction *Reproduction
	Stagnation   *Stagnation
	Output       io.Writer // progress lines; defaults to os.Stdout

	rng       *rand.Rand
	result    *Result
	converged bool
}

// NewPopulation validates config and creates the initial generation and goal.
// All randomness of the run is drawn from rng; if rng is nil one is seeded
// from config.GA.Seed, or from the clock when the seed is 0.
func NewPopulation(config *Config, rng *rand.Rand) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(config.GA.Seed)
	}

	reproduction := NewReproduction(&config.Reproduction, rng)
	members := reproduction.CreateNewPopulation(config.Genotype.Length, config.GA.PopSize)

	var goal Genotype
	if config.Genotype.Goal != "" {
		var err error
		goal, err = ParseGenotype(config.Genotype.Goal)
		if err != nil {
			return nil, &ConfigError{Field: "goal", Reason: err.Error()}
		}
	} else {
		goal = RandomGoal(rng, config.Genotype.Length)
	}

	return &Population{
		Config:       config,
		Members:      members,
		Goal:         goal,
		Reproduction: reproduction,
		Stagnation:   NewStagnation(&config.GA),
		Output:       os.Stdout,
		rng:          rng,
	}, nil
}

// NewRand returns a random source for seed. A zero seed is replaced by one
// taken from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Solved reports whether the run has found the goal.
func (p *Population) Solved() bool { return p.result != nil }

// RunGeneration evaluates the current members and, if none matches the goal,
// replaces them with a bred generation.
// It returns the Result once a member matches; later calls return the same
// Result without touching the population.
func (p *Population) RunGeneration() (*Result, error) {
	if p.result != nil {
		return p.result, nil
	}

	// 1. Evaluate
	scored, err := ScorePopulation(p.Members, p.Goal)
	if err != nil {
		return nil, fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation, err)
	}
	fs := ComputeFitnessStats(scored)
	if p.Config.GA.Verbose {
		p.printf("Generation %d: best %d/%d, mean %.2f, stdev %.2f\n",
			p.Generation, fs.Best, p.Goal.Len(), fs.Mean, fs.Stdev)
	}

	// 2. Check termination
	if id, ok := FindSolution(scored, p.Goal.Len()); ok {
		p.result = &Result{
			ID:         id,
			Genotype:   p.Members[id],
			Goal:       p.Goal,
			Generation: p.Generation,
		}
		return p.result, nil
	}
	if p.Stagnation.Update(p.Generation, fs.Best) {
		p.printf("Warning: best fitness %d has not improved for %d generations.\n",
			p.Stagnation.BestFitness, p.Generation-p.Stagnation.LastImproved)
	}

	// 3. Select
	survivors := Select(scored, p.Config.Reproduction.TopN)
	if !p.converged && Converged(survivors, p.Members) {
		p.converged = true
		p.printf("Info: all %d survivors share genotype %v in generation %d; the population can no longer change.\n",
			len(survivors), p.Members[survivors[0].ID], p.Generation)
	}

	// 4. Breed
	next, err := p.Reproduction.NextGeneration(survivors, p.Members, p.Config.GA.PopSize)
	if err != nil {
		return nil, fmt.Errorf("reproduction failed in generation %d: %w", p.Generation, err)
	}
	p.Members = next
	p.Generation++

	return nil, nil
}

// Run repeats RunGeneration until a member matches the goal or an error occurs.
// There is no generation limit.
func (p *Population) Run() (*Result, error) {
	for {
		result, err := p.RunGeneration()
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
}

func (p *Population) printf(format string, args ...any) {
	if p.Output == nil {
		return
	}
	fmt.Fprintf(p.Output, format, args...)
}
