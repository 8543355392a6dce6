package ga

import "math/rand"

const (
	// DefaultResolverDraws is the number of weighted draws per majority vote.
	DefaultResolverDraws = 10
	// DefaultMaxResolveAttempts bounds how many tied votes are redrawn.
	DefaultMaxResolveAttempts = 1000
)

// Resolver decides the child's gene where its two parents disagree.
// Instead of a single coin with P(1) = Bias it runs Draws weighted draws and
// takes the majority, which sharpens the pull toward the favoured bit.
type Resolver struct {
	Bias        float64 // probability of drawing a 1
	Draws       int
	MaxAttempts int
}

// NewResolver returns a resolver using the configured draw count and retry bound.
func NewResolver(config *ReproductionConfig) *Resolver {
	return &Resolver{
		Bias:        config.CrossoverBias,
		Draws:       config.ResolverDraws,
		MaxAttempts: config.MaxResolveAttempts,
	}
}

// Resolve returns 1 if the draws produced more ones than zeros and 0 if they
// produced more zeros. A tie is discarded and redrawn, up to MaxAttempts votes.
func (r *Resolver) Resolve(rng *rand.Rand) (int, error) {
	for attempt := 0; attempt < r.MaxAttempts; attempt++ {
		ones := 0
		for i := 0; i < r.Draws; i++ {
			if rng.Float64() < r.Bias {
				ones++
			}
		}
		zeros := r.Draws - ones
		if ones > zeros {
			return 1, nil
		}
		if zeros > ones {
			return 0, nil
		}
	}
	return 0, &UnresolvedGeneError{Attempts: r.MaxAttempts, Bias: r.Bias}
}
