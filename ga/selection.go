package ga

import "sort"

// Select performs truncation selection: it keeps the topN fittest entries of
// scored, best first. Equal fitness keeps the input order, so with scored in
// ascending id order the lower id wins a tie. Fewer than topN entries means
// everyone survives. scored is not modified.
func Select(scored []Scored, topN int) []Scored {
	ranked := make([]Scored, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})
	if topN < 0 {
		topN = 0
	}
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
