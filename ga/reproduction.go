package ga

import (
	"fmt"
	"math/rand"
)

// Reproduction handles the creation of new genotypes, either from scratch or
// by breeding two survivors.
type Reproduction struct {
	Config    *ReproductionConfig
	Resolver  *Resolver
	Ancestors map[int][2]int // child id -> parent ids in the previous generation
	rng       *rand.Rand
}

// NewReproduction creates a new reproduction manager drawing from rng.
func NewReproduction(config *ReproductionConfig, rng *rand.Rand) *Reproduction {
	return &Reproduction{
		Config:    config,
		Resolver:  NewResolver(config),
		Ancestors: make(map[int][2]int),
		rng:       rng,
	}
}

// CreateNewPopulation creates the initial members, ids 0..popSize-1.
func (r *Reproduction) CreateNewPopulation(length, popSize int) map[int]Genotype {
	members := make(map[int]Genotype, popSize)
	for id := 0; id < popSize; id++ {
		members[id] = RandomGenotype(r.rng, length)
	}
	r.Ancestors = make(map[int][2]int)
	return members
}

// BreedChild builds one child gene by gene. Where the parents agree the child
// inherits the shared gene; where they disagree the Resolver decides.
func (r *Reproduction) BreedChild(parent1, parent2 Genotype) (Genotype, error) {
	if err := checkLength(parent2.Len(), parent1.Len()); err != nil {
		return Genotype{}, err
	}
	child := newGenotype(parent1.Len())
	for i := 0; i < parent1.Len(); i++ {
		gene := parent1.Bit(i)
		if gene != parent2.Bit(i) {
			resolved, err := r.Resolver.Resolve(r.rng)
			if err != nil {
				return Genotype{}, fmt.Errorf("resolving gene %d: %w", i, err)
			}
			gene = resolved
		}
		if gene == 1 {
			child.bits.Set(uint(i))
		}
	}
	return child, nil
}

// ChooseParents draws two different ids uniformly from ids. The second draw
// is repeated until it differs from the first.
func (r *Reproduction) ChooseParents(ids []int) (int, int, error) {
	if distinct := countDistinct(ids); distinct < 2 {
		return 0, 0, &DegenerateSelectionError{Survivors: distinct}
	}
	parent1 := ids[r.rng.Intn(len(ids))]
	parent2 := ids[r.rng.Intn(len(ids))]
	for parent2 == parent1 {
		parent2 = ids[r.rng.Intn(len(ids))]
	}
	return parent1, parent2, nil
}

// NextGeneration breeds popSize children from the survivors' genotypes.
// Children get fresh ids 0..popSize-1 regardless of their parents' ids, and
// no survivor is copied over unchanged.
func (r *Reproduction) NextGeneration(survivors []Scored, members map[int]Genotype, popSize int) (map[int]Genotype, error) {
	parents := make(map[int]Genotype, len(survivors))
	ids := make([]int, 0, len(survivors))
	for _, s := range survivors {
		g, ok := members[s.ID]
		if !ok {
			return nil, fmt.Errorf("survivor %d is not a member of the population", s.ID)
		}
		if _, seen := parents[s.ID]; !seen {
			ids = append(ids, s.ID)
		}
		parents[s.ID] = g
	}

	children := make(map[int]Genotype, popSize)
	ancestors := make(map[int][2]int, popSize)
	for id := 0; id < popSize; id++ {
		p1, p2, err := r.ChooseParents(ids)
		if err != nil {
			return nil, err
		}
		child, err := r.BreedChild(parents[p1], parents[p2])
		if err != nil {
			return nil, fmt.Errorf("breeding child %d from %d and %d: %w", id, p1, p2, err)
		}
		children[id] = child
		ancestors[id] = [2]int{p1, p2}
	}
	r.Ancestors = ancestors
	return children, nil
}

func countDistinct(ids []int) int {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
