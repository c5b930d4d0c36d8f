package app

import "github.com/alexanderramin/gradeplan/internal/domain"

// Allocation is the engine's answer for one pending activity.
type Allocation struct {
	ActivityID     string
	Name           string
	Index          int // position in the full input list
	Rank           int // position in the greedy walk, -1 when excluded from it
	Rate           float64
	AllocatedHours float64
	ResultingGrade float64
	Capped         bool
}

// ResultDetail carries diagnostics for a non-optimal result.
type ResultDetail struct {
	Kind            domain.ErrorKind
	ActualWeightSum float64
	Message         string
}

// Warning is a non-fatal issue resolved by policy during the solve.
type Warning struct {
	Kind       domain.ErrorKind
	ActivityID string
	Index      int
	Message    string
}

// OptimizationResult is freshly allocated per solve and owned by the caller.
type OptimizationResult struct {
	Status           domain.ResultStatus
	Allocations      []Allocation
	WeightedAverage  float64
	DoneContribution float64
	BudgetHours      float64
	AllocatedHours   float64
	UnspentHours     float64
	Detail           *ResultDetail
	Warnings         []Warning
}

// IsOptimal reports whether the solve ran to completion.
func (r *OptimizationResult) IsOptimal() bool {
	return r != nil && r.Status == domain.StatusOptimal
}

// AllocationFor returns the allocation for the activity at input index i.
func (r *OptimizationResult) AllocationFor(index int) (Allocation, bool) {
	if r == nil {
		return Allocation{}, false
	}
	for _, a := range r.Allocations {
		if a.Index == index {
			return a, true
		}
	}
	return Allocation{}, false
}
