package ga

// Stagnation watches the best fitness per generation. It never stops a run;
// it only reports when progress has stalled.
type Stagnation struct {
	MaxStagnation int // 0 disables the check

	BestFitness  int
	LastImproved int
	warned       bool
}

// NewStagnation creates a stagnation monitor from the loop configuration.
func NewStagnation(config *GAConfig) *Stagnation {
	return &Stagnation{
		MaxStagnation: config.MaxStagnation,
		BestFitness:   -1,
	}
}

// Update records the best fitness of a generation. It returns true exactly
// once per stall: the first generation at which MaxStagnation generations have
// passed without improvement. Improvement re-arms it.
func (s *Stagnation) Update(generation, best int) bool {
	if best > s.BestFitness {
		s.BestFitness = best
		s.LastImproved = generation
		s.warned = false
		return false
	}
	if s.MaxStagnation <= 0 || s.warned {
		return false
	}
	if generation-s.LastImproved >= s.MaxStagnation {
		s.warned = true
		return true
	}
	return false
}

// Converged reports whether every survivor carries the same genotype. Breeding
// identical parents reproduces them exactly, so such a population can never
// change again.
func Converged(survivors []Scored, members map[int]Genotype) bool {
	if len(survivors) < 2 {
		return false
	}
	first := members[survivors[0].ID]
	for _, s := range survivors[1:] {
		if !members[s.ID].Equal(first) {
			return false
		}
	}
	return true
}
