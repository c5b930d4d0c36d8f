package formatter

import "strings"

// FormatAbout renders the program description.
func FormatAbout() string {
	var b strings.Builder
	b.WriteString(Bold("Grade average optimization") + "\n\n")
	b.WriteString("Finds the best weighted average you can reach given:\n")
	b.WriteString("  • the weight of each activity\n")
	b.WriteString("  • the grade gained per hour of weekly study\n")
	b.WriteString("  • the weekly study time available\n\n")
	b.WriteString(Dim("Hours go to the activities that return the most average per hour,\n"))
	b.WriteString(Dim("each one up to the maximum grade, until the budget runs out."))
	return RenderBox("About gradeplan", b.String())
}
