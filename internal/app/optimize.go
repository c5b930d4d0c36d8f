package app

import (
	"context"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

// OptimizeRequest is one solve: an immutable activity snapshot and a budget.
type OptimizeRequest struct {
	Activities  []domain.Activity
	BudgetHours float64
	Source      string // preset name or file path, for telemetry only
}

func NewOptimizeRequest(activities []domain.Activity, budgetHours float64) OptimizeRequest {
	return OptimizeRequest{
		Activities:  domain.CloneActivities(activities),
		BudgetHours: budgetHours,
	}
}

// CheckReport summarizes the preconditions of a solve without running it.
type CheckReport struct {
	WeightSum    float64
	Balanced     bool
	PendingCount int
	DoneCount    int
	Problems     []error
}

type OptimizeUseCase interface {
	Optimize(ctx context.Context, req OptimizeRequest) (*OptimizationResult, error)
}

type CheckUseCase interface {
	Check(ctx context.Context, activities []domain.Activity) (*CheckReport, error)
}
