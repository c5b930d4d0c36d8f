package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

var activityHeaders = []string{"#", "ACTIVITY", "WEIGHT", "H/PT", "STATUS", "GRADE"}

var activityAligns = []Align{AlignRight, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignRight}

// FormatActivities renders an activity table with its budget.
func FormatActivities(title string, budgetHours float64, acts []domain.Activity) string {
	var b strings.Builder
	b.WriteString(Header(domain.FirstSet(title, "Activities")))
	b.WriteString("\n")

	rows := make([][]string, len(acts))
	for i, a := range acts {
		status, grade := StyleBlue.Render("pending"), Dim("-")
		if a.Done {
			g := a.GradeOr(0)
			status, grade = Dim("done"), GradeColor(g).Render(FormatGrade(g))
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			a.Label(i),
			FormatWeight(a.Weight),
			trimFloat(a.EffortPerGrade, 2),
			status,
			grade,
		}
	}
	b.WriteString(RenderAlignedTable(activityHeaders, activityAligns, rows))
	b.WriteString(Dim(fmt.Sprintf("Budget %s per week, weights sum to %.4f", FormatHours(budgetHours), domain.WeightSum(acts))))
	b.WriteString("\n")
	return b.String()
}

// FormatPresetList lists preset names, marking the configured default.
func FormatPresetList(names []string, defaultName string) string {
	var b strings.Builder
	b.WriteString(Header("Presets"))
	b.WriteString("\n")
	for _, n := range names {
		if n == defaultName {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("●"), Bold(n)+Dim("  (default)")))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("○"), n))
	}
	return b.String()
}
