package ga

import (
	"fmt"
	"sort"
)

// Scored pairs a member id with its fitness for one generation.
type Scored struct {
	ID      int
	Fitness int
}

// Score returns the number of positions where g matches goal.
// Both genotypes must have the same length.
func Score(g, goal Genotype) (int, error) {
	if err := checkLength(g.Len(), goal.Len()); err != nil {
		return 0, err
	}
	return goal.Len() - g.mismatches(goal), nil
}

// ScorePopulation scores every member against goal.
// The result is ordered by ascending id, which downstream tie-breaking
// (FindSolution, Select) relies on.
func ScorePopulation(members map[int]Genotype, goal Genotype) ([]Scored, error) {
	ids := sortedIDs(members)
	scored := make([]Scored, 0, len(ids))
	for _, id := range ids {
		fitness, err := Score(members[id], goal)
		if err != nil {
			return nil, fmt.Errorf("scoring member %d: %w", id, err)
		}
		scored = append(scored, Scored{ID: id, Fitness: fitness})
	}
	return scored, nil
}

// FindSolution returns the id of the first member whose fitness equals
// goalLength, in the order of scored.
func FindSolution(scored []Scored, goalLength int) (int, bool) {
	for _, s := range scored {
		if s.Fitness == goalLength {
			return s.ID, true
		}
	}
	return 0, false
}

func sortedIDs(members map[int]Genotype) []int {
	ids := make([]int, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
