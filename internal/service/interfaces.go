package service

import (
	"context"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/domain"
)

// PlanService runs the optimization engine for the CLI and the editor.
type PlanService interface {
	Optimize(ctx context.Context, req app.OptimizeRequest) (*app.OptimizationResult, error)
	Check(ctx context.Context, activities []domain.Activity) (*app.CheckReport, error)
}
