package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/app"
)

// FormatCheckReport renders the outcome of a pre-solve check.
func FormatCheckReport(report *app.CheckReport) string {
	var b strings.Builder
	b.WriteString(Header("Check"))
	b.WriteString("\n")

	sum := fmt.Sprintf("%.4f", report.WeightSum)
	if report.Balanced {
		b.WriteString(fmt.Sprintf("Weights sum     %s  %s\n", sum, StyleGreen.Render("✔ balanced")))
	} else {
		b.WriteString(fmt.Sprintf("Weights sum     %s  %s\n", sum, StyleRed.Render("✖ must be 1 (±0.001)")))
	}
	b.WriteString(fmt.Sprintf("Activities      %d %s\n",
		report.PendingCount+report.DoneCount,
		Dim(fmt.Sprintf("(%d done, %d pending)", report.DoneCount, report.PendingCount))))

	if len(report.Problems) == 0 {
		b.WriteString(StyleGreen.Render("Ready to optimize.") + "\n")
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(FormatErrors(report.Problems))
	return b.String()
}

// FormatErrors renders one red line per error.
func FormatErrors(errs []error) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(StyleRed.Render("✖ "+err.Error()) + "\n")
	}
	return b.String()
}

// FormatError renders a single error the way the CLI prints it.
func FormatError(err error) string {
	return StyleRed.Render("Error: " + err.Error())
}
