package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatHours renders hours with at most two decimals: "2.5h", "0h".
func FormatHours(h float64) string {
	return trimFloat(h, 2) + "h"
}

// FormatGrade renders a grade with two decimals.
func FormatGrade(g float64) string {
	return fmt.Sprintf("%.2f", g)
}

// FormatWeight renders a weight in [0, 1] as a percentage: "40%", "12.5%".
func FormatWeight(w float64) string {
	return trimFloat(w*100, 1) + "%"
}

// FormatRate renders grade points per hour.
func FormatRate(r float64) string {
	return fmt.Sprintf("%.3f", r)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

func trimFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
