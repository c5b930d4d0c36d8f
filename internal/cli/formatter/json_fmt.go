package formatter

import (
	"encoding/json"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/domain"
)

type resultJSON struct {
	Status           string           `json:"status"`
	WeightedAverage  float64          `json:"weighted_average"`
	DoneContribution float64          `json:"done_contribution"`
	BudgetHours      float64          `json:"budget_hours"`
	AllocatedHours   float64          `json:"allocated_hours"`
	UnspentHours     float64          `json:"unspent_hours"`
	ActualWeightSum  *float64         `json:"actual_weight_sum,omitempty"`
	Message          string           `json:"message,omitempty"`
	Allocations      []allocationJSON `json:"allocations"`
	Warnings         []warningJSON    `json:"warnings,omitempty"`
}

type allocationJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Index          int     `json:"index"`
	Rank           int     `json:"rank"`
	Rate           float64 `json:"rate"`
	AllocatedHours float64 `json:"allocated_hours"`
	ResultingGrade float64 `json:"resulting_grade"`
	Capped         bool    `json:"capped"`
}

type warningJSON struct {
	Kind    string `json:"kind"`
	ID      string `json:"id,omitempty"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type checkJSON struct {
	WeightSum    float64  `json:"weight_sum"`
	Balanced     bool     `json:"balanced"`
	PendingCount int      `json:"pending_count"`
	DoneCount    int      `json:"done_count"`
	Problems     []string `json:"problems"`
}

// FormatResultJSON renders a result as indented JSON for scripting.
// Names fall back to "Activity N" the same way the text output does.
func FormatResultJSON(res *app.OptimizationResult, acts []domain.Activity) ([]byte, error) {
	out := resultJSON{
		Status:           string(res.Status),
		WeightedAverage:  res.WeightedAverage,
		DoneContribution: res.DoneContribution,
		BudgetHours:      res.BudgetHours,
		AllocatedHours:   res.AllocatedHours,
		UnspentHours:     res.UnspentHours,
		Allocations:      make([]allocationJSON, 0, len(res.Allocations)),
	}
	if res.Detail != nil {
		out.Message = res.Detail.Message
		if res.Detail.Kind == domain.KindWeightSum {
			sum := res.Detail.ActualWeightSum
			out.ActualWeightSum = &sum
		}
	}
	for _, a := range res.Allocations {
		name := a.Name
		if a.Index >= 0 && a.Index < len(acts) {
			name = acts[a.Index].Label(a.Index)
		}
		out.Allocations = append(out.Allocations, allocationJSON{
			ID:             a.ActivityID,
			Name:           name,
			Index:          a.Index,
			Rank:           a.Rank,
			Rate:           a.Rate,
			AllocatedHours: a.AllocatedHours,
			ResultingGrade: a.ResultingGrade,
			Capped:         a.Capped,
		})
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, warningJSON{
			Kind: string(w.Kind), ID: w.ActivityID, Index: w.Index, Message: w.Message,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// FormatCheckReportJSON renders a check report as indented JSON.
func FormatCheckReportJSON(report *app.CheckReport) ([]byte, error) {
	out := checkJSON{
		WeightSum:    report.WeightSum,
		Balanced:     report.Balanced,
		PendingCount: report.PendingCount,
		DoneCount:    report.DoneCount,
		Problems:     make([]string, 0, len(report.Problems)),
	}
	for _, p := range report.Problems {
		out.Problems = append(out.Problems, p.Error())
	}
	return json.MarshalIndent(out, "", "  ")
}
