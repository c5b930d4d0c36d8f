package optimizer

import "math"

// Walk is the outcome of the greedy pass, indexed like Problem.Candidates.
type Walk struct {
	Hours     []float64
	Rank      []int // -1 for candidates outside the walk
	Remaining float64
}

// AllocateHours fills candidates in rank order, each up to the smaller of its
// cap and the remaining budget. Budget left once every candidate is capped
// stays unspent. The hours, summed in candidate order, never exceed
// budgetHours.
func AllocateHours(candidates []Candidate, order []int, budgetHours float64) Walk {
	w := Walk{
		Hours: make([]float64, len(candidates)),
		Rank:  make([]int, len(candidates)),
	}
	for i := range w.Rank {
		w.Rank[i] = -1
	}

	spent := 0.0
	for rank, ci := range order {
		w.Rank[ci] = rank
		left := budgetHours - spent
		if left <= 0 || candidates[ci].Rate < 0 {
			continue
		}
		h := math.Min(candidates[ci].CapHours, left)
		w.Hours[ci] = h
		spent += h
	}

	trimOverspend(w.Hours, order, budgetHours)
	w.Remaining = math.Max(0, budgetHours-sumHours(w.Hours))
	return w
}

// trimOverspend removes rounding overshoot from the last-ranked shares so
// the candidate-order sum stays within budget.
func trimOverspend(hours []float64, order []int, budget float64) {
	for k := len(order) - 1; k >= 0; k-- {
		ci := order[k]
		for hours[ci] > 0 {
			over := sumHours(hours) - budget
			if over <= 0 {
				return
			}
			h := hours[ci] - over
			if h >= hours[ci] {
				h = math.Nextafter(hours[ci], 0)
			}
			hours[ci] = math.Max(0, h)
		}
	}
}

func sumHours(hours []float64) float64 {
	total := 0.0
	for _, h := range hours {
		total += h
	}
	return total
}
