// Package optimizer allocates a weekly study budget across pending graded
// activities so that the weighted final average is maximal.
//
// Every pending activity shares one budget constraint and is capped
// independently at grade 10, so the linear program is a fractional knapsack
// and the greedy walk by rate is optimal.
package optimizer

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/domain"
)

// DefaultMaxPending is the default ceiling on pending activities per solve.
const DefaultMaxPending = 10000

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	MaxPending int
	ZeroEffort domain.ZeroEffortPolicy
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		MaxPending: DefaultMaxPending,
		ZeroEffort: domain.ZeroEffortFreeMax,
	}
}

// Engine is stateless apart from its options and safe for concurrent use.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.MaxPending <= 0 {
		opts.MaxPending = def.MaxPending
	}
	if !domain.ValidZeroEffortPolicies[string(opts.ZeroEffort)] {
		opts.ZeroEffort = def.ZeroEffort
	}
	return &Engine{opts: opts}
}

func (e *Engine) Options() Options {
	return e.opts
}

// ComputeOptimalEffort solves the allocation for a snapshot of activities.
//
// A failed weight-sum precondition is not an error: it yields a result with
// status INVALID_INPUT and the actual sum in Detail. Structural defects
// (budget, size ceiling, missing grade, degenerate effort) return an
// *EngineError. The activities slice is never modified.
func (e *Engine) ComputeOptimalEffort(activities []domain.Activity, weeklyBudgetHours float64) (*app.OptimizationResult, error) {
	if math.IsNaN(weeklyBudgetHours) || math.IsInf(weeklyBudgetHours, 0) || weeklyBudgetHours < 0 {
		return nil, &EngineError{
			Kind: domain.KindInvalidBudget, Index: -1,
			Message: fmt.Sprintf("weekly budget must be a finite, non-negative number of hours, got %v", weeklyBudgetHours),
		}
	}

	if n := PendingCount(activities); n > e.opts.MaxPending {
		return nil, &EngineError{
			Kind: domain.KindInputTooLarge, Index: -1,
			Message: fmt.Sprintf("%d pending activities exceed the limit of %d", n, e.opts.MaxPending),
		}
	}

	var wsErr *WeightSumError
	if err := CheckWeightSum(activities); errors.As(err, &wsErr) {
		return &app.OptimizationResult{
			Status:       domain.StatusInvalidInput,
			BudgetHours:  weeklyBudgetHours,
			UnspentHours: weeklyBudgetHours,
			Detail: &app.ResultDetail{
				Kind:            domain.KindWeightSum,
				ActualWeightSum: wsErr.ActualSum,
				Message:         wsErr.Error(),
			},
		}, nil
	}

	problem, err := BuildProblem(activities, e.opts.ZeroEffort)
	if err != nil {
		return nil, err
	}

	walk := AllocateHours(problem.Candidates, RankCandidates(problem.Candidates), weeklyBudgetHours)
	return extractResult(problem, walk, weeklyBudgetHours), nil
}

func extractResult(p *Problem, w Walk, budget float64) *app.OptimizationResult {
	res := &app.OptimizationResult{
		Status:           domain.StatusOptimal,
		Allocations:      make([]app.Allocation, 0, len(p.Candidates)),
		DoneContribution: p.Offset,
		BudgetHours:      budget,
	}

	pendingTerm := 0.0
	for i, c := range p.Candidates {
		alloc := app.Allocation{
			ActivityID: c.Activity.ID,
			Name:       c.Activity.Name,
			Index:      c.Index,
			Rank:       w.Rank[i],
			Rate:       c.Rate,
		}
		if c.Free {
			alloc.ResultingGrade = domain.MaxGrade
			alloc.Capped = true
			res.Warnings = append(res.Warnings, app.Warning{
				Kind:       domain.KindDegenerateEffort,
				ActivityID: c.Activity.ID,
				Index:      c.Index,
				Message:    fmt.Sprintf("%s has zero effort per grade; grade 10 assumed with no study time", c.Activity.Label(c.Index)),
			})
		} else {
			alloc.AllocatedHours = w.Hours[i]
			alloc.ResultingGrade = math.Min(domain.MaxGrade, w.Hours[i]/c.Activity.EffortPerGrade)
			alloc.Capped = w.Hours[i] >= c.CapHours
		}
		pendingTerm += c.Activity.Weight * alloc.ResultingGrade
		res.AllocatedHours += alloc.AllocatedHours
		res.Allocations = append(res.Allocations, alloc)
	}

	res.WeightedAverage = p.Offset + pendingTerm
	res.UnspentHours = math.Max(0, budget-res.AllocatedHours)
	return res
}
