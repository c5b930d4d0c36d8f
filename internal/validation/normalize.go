// Package validation normalizes raw activity fields into their legal domains.
//
// Invalid input is never rejected: it is clamped to 0 and reported through a
// ValidationError so the caller can highlight the field while computation
// keeps receiving well-formed numbers.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

// Field names used in ValidationError.Field.
const (
	FieldWeight = "weight"
	FieldEffort = "effort_per_grade"
	FieldGrade  = "grade"
	FieldBudget = "budget_hours"
)

// ValidationError describes a raw value that was clamped to the default.
type ValidationError struct {
	Kind  domain.ErrorKind
	Field string
	Raw   string
	Row   int // -1 when the value does not belong to a table row
}

func (e *ValidationError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s: row %d %s: invalid value %q", e.Kind, e.Row+1, e.Field, e.Raw)
	}
	return fmt.Sprintf("%s: %s: invalid value %q", e.Kind, e.Field, e.Raw)
}

// NormalizeWeight parses a weight in [0, 1].
func NormalizeWeight(raw string) (float64, *ValidationError) {
	return normalize(raw, 0, 1, domain.KindWeightOutOfRange, FieldWeight)
}

// NormalizeEffort parses hours-per-grade-point in [0, +Inf).
func NormalizeEffort(raw string) (float64, *ValidationError) {
	return normalize(raw, 0, math.Inf(1), domain.KindEffortInvalid, FieldEffort)
}

// NormalizeGrade parses a grade in [0, 10]. Only call it for done activities.
func NormalizeGrade(raw string) (float64, *ValidationError) {
	return normalize(raw, 0, domain.MaxGrade, domain.KindGradeOutOfRange, FieldGrade)
}

// NormalizeBudget parses weekly study hours in [0, 168].
func NormalizeBudget(raw string) (float64, *ValidationError) {
	return normalize(raw, 0, domain.MaxWeeklyHours, domain.KindBudgetOutOfRange, FieldBudget)
}

func normalize(raw string, lo, hi float64, kind domain.ErrorKind, field string) (float64, *ValidationError) {
	v, ok := parseNumber(raw)
	if !ok || v < lo || v > hi {
		return 0, &ValidationError{Kind: kind, Field: field, Raw: raw, Row: -1}
	}
	return v, nil
}

// parseNumber accepts a decimal comma and rejects NaN and infinities.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatNumber renders a normalized value back into cell text.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
