package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGradeBar renders a grade on the 0..10 scale as a bar like
// [████████░░] 8.53, colored by GradeColor.
func RenderGradeBar(grade float64, width int) string {
	if width < 2 {
		width = 2
	}
	pct := min(max(grade/domain.MaxGrade, 0), 1)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %s", GradeColor(grade).Render(bar), FormatGrade(grade))
}
