package optimizer

import "sort"

// RankCandidates returns the walk order for the greedy solver: rate
// descending, ties broken by input position. Free candidates are left out.
// The input slice is not reordered.
func RankCandidates(candidates []Candidate) []int {
	order := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if !c.Free {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := candidates[order[i]], candidates[order[j]]
		if a.Rate != b.Rate {
			return a.Rate > b.Rate
		}
		return a.Index < b.Index
	})
	return order
}
