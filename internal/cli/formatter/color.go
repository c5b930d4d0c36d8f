package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Grade bands used for coloring.
const (
	passingGrade = 5.0
	goodGrade    = 7.0
)

// GradeColor picks red below 5, yellow below 7 and green otherwise.
func GradeColor(grade float64) lipgloss.Style {
	switch {
	case grade < passingGrade:
		return StyleRed
	case grade < goodGrade:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// StatusIndicator returns a colored result status such as "● OPTIMAL".
func StatusIndicator(status domain.ResultStatus) string {
	switch status {
	case domain.StatusOptimal:
		return StyleGreen.Render("● OPTIMAL")
	case domain.StatusInvalidInput:
		return StyleRed.Render("● INVALID INPUT")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
