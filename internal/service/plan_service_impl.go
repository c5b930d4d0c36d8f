package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/optimizer"
)

type planService struct {
	engine   *optimizer.Engine
	observer UseCaseObserver
}

func NewPlanService(engine *optimizer.Engine, observers ...UseCaseObserver) PlanService {
	if engine == nil {
		engine = optimizer.NewEngine(optimizer.DefaultOptions())
	}
	return &planService{
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Optimize(ctx context.Context, req app.OptimizeRequest) (res *app.OptimizationResult, err error) {
	span := s.startUseCase("optimize", map[string]any{
		"activities":   len(req.Activities),
		"pending":      optimizer.PendingCount(req.Activities),
		"budget_hours": req.BudgetHours,
	})
	if req.Source != "" {
		span.set("source", req.Source)
	}
	defer func() {
		if res != nil {
			span.set("status", string(res.Status))
			span.set("weighted_average", res.WeightedAverage)
		}
		span.finish(ctx, err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	res, err = s.engine.ComputeOptimalEffort(req.Activities, req.BudgetHours)
	if err != nil {
		return nil, fmt.Errorf("computing optimal effort: %w", err)
	}
	return res, nil
}

func (s *planService) Check(ctx context.Context, activities []domain.Activity) (report *app.CheckReport, err error) {
	span := s.startUseCase("check", map[string]any{"activities": len(activities)})
	defer func() {
		if report != nil {
			span.set("balanced", report.Balanced)
			span.set("problems", len(report.Problems))
		}
		span.finish(ctx, err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	report = &app.CheckReport{
		WeightSum:    domain.WeightSum(activities),
		PendingCount: optimizer.PendingCount(activities),
	}
	report.DoneCount = len(activities) - report.PendingCount
	report.Balanced = optimizer.CheckWeightSum(activities) == nil
	report.Problems = s.engine.Preflight(activities)
	return report, nil
}
