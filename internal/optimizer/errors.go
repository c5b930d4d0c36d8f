package optimizer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

var (
	// ErrWeightSum indicates the activity weights do not sum to 1.
	ErrWeightSum = errors.New("weights do not sum to 1")

	// ErrDegenerateEffort indicates a pending activity with unusable effort-per-grade.
	ErrDegenerateEffort = errors.New("degenerate effort per grade")

	// ErrInputTooLarge indicates more pending activities than the configured ceiling.
	ErrInputTooLarge = errors.New("too many pending activities")

	// ErrInvalidBudget indicates a negative or non-finite weekly budget.
	ErrInvalidBudget = errors.New("invalid weekly budget")

	// ErrMissingGrade indicates a done activity without a grade.
	ErrMissingGrade = errors.New("done activity has no grade")

	// ErrWeightOutOfRange indicates a weight outside [0, 1].
	ErrWeightOutOfRange = errors.New("weight out of range")

	// ErrGradeOutOfRange indicates a done grade outside [0, 10].
	ErrGradeOutOfRange = errors.New("grade out of range")
)

// WeightSumError reports a failed weight-sum precondition.
type WeightSumError struct {
	ActualSum float64
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("%s: weights sum to %.4f, expected 1 (±%g)", domain.KindWeightSum, e.ActualSum, WeightSumTolerance)
}

func (e *WeightSumError) Unwrap() error { return ErrWeightSum }

// EngineError is a structural failure surfaced before or instead of a solve.
type EngineError struct {
	Kind    domain.ErrorKind
	Index   int // offending activity, -1 when not tied to one
	Name    string
	Message string
}

func (e *EngineError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: activity %d (%s): %s", e.Kind, e.Index+1, e.Name, e.Message)
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *EngineError) Unwrap() error {
	switch e.Kind {
	case domain.KindDegenerateEffort:
		return ErrDegenerateEffort
	case domain.KindInputTooLarge:
		return ErrInputTooLarge
	case domain.KindInvalidBudget:
		return ErrInvalidBudget
	case domain.KindMissingGrade:
		return ErrMissingGrade
	case domain.KindWeightOutOfRange:
		return ErrWeightOutOfRange
	case domain.KindGradeOutOfRange:
		return ErrGradeOutOfRange
	default:
		return nil
	}
}
