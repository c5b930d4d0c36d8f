package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/domain"
)

var resultHeaders = []string{"#", "ACTIVITY", "WEIGHT", "H/PT", "RANK", "HOURS", "GRADE"}

var resultAligns = []Align{AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight}

// FormatResult renders an OptimizationResult next to the activities it was
// computed from. acts must be the same slice, in the same order, that was
// passed to the engine.
func FormatResult(res *app.OptimizationResult, acts []domain.Activity) string {
	if res == nil {
		return ""
	}
	if !res.IsOptimal() {
		return FormatInvalidResult(res)
	}

	var b strings.Builder
	b.WriteString(Header("Study plan"))
	b.WriteString("\n")
	b.WriteString(StatusIndicator(res.Status))
	b.WriteString("  ")
	b.WriteString(Dim(fmt.Sprintf("budget %s, allocated %s, unspent %s",
		FormatHours(res.BudgetHours), FormatHours(res.AllocatedHours), FormatHours(res.UnspentHours))))
	b.WriteString("\n\n")

	b.WriteString(RenderAlignedTable(resultHeaders, resultAligns, resultRows(res, acts)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("Weighted average"), RenderGradeBar(res.WeightedAverage, 20)))
	b.WriteString(fmt.Sprintf("%s    %s\n", Dim("From done work"), FormatGrade(res.DoneContribution)))

	for _, w := range res.Warnings {
		b.WriteString(StyleYellow.Render("! "+w.Message) + "\n")
	}
	return b.String()
}

func resultRows(res *app.OptimizationResult, acts []domain.Activity) [][]string {
	rows := make([][]string, 0, len(acts))
	for i, a := range acts {
		row := []string{
			strconv.Itoa(i + 1),
			a.Label(i),
			FormatWeight(a.Weight),
			trimFloat(a.EffortPerGrade, 2),
		}
		if a.Done {
			grade := a.GradeOr(0)
			row = append(row, Dim("done"), Dim("-"), GradeColor(grade).Render(FormatGrade(grade)))
			rows = append(rows, row)
			continue
		}

		alloc, ok := res.AllocationFor(i)
		if !ok {
			row = append(row, "-", "-", "-")
			rows = append(rows, row)
			continue
		}
		rank := Dim("free")
		if alloc.Rank >= 0 {
			rank = strconv.Itoa(alloc.Rank + 1)
		}
		hours := FormatHours(alloc.AllocatedHours)
		if alloc.AllocatedHours > 0 {
			hours = StyleBlue.Render(hours)
		}
		row = append(row, rank, hours, GradeColor(alloc.ResultingGrade).Render(FormatGrade(alloc.ResultingGrade)))
		rows = append(rows, row)
	}
	return rows
}

// FormatInvalidResult explains why no allocation was computed.
func FormatInvalidResult(res *app.OptimizationResult) string {
	var b strings.Builder
	b.WriteString(StatusIndicator(res.Status))
	b.WriteString("\n")
	if res.Detail != nil && res.Detail.Kind == domain.KindWeightSum {
		b.WriteString(StyleRed.Render(fmt.Sprintf(
			"Weights sum to %.4f; they must add up to 1 (±0.001).", res.Detail.ActualWeightSum)))
		b.WriteString("\n")
		b.WriteString(Dim("Adjust the weights and run again."))
		b.WriteString("\n")
	} else if res.Detail != nil {
		b.WriteString(StyleRed.Render(res.Detail.Message) + "\n")
	}
	return b.String()
}
