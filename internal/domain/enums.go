package domain

// ErrorKind classifies every error the validator and engine can report.
type ErrorKind string

const (
	KindWeightOutOfRange ErrorKind = "WEIGHT_OUT_OF_RANGE"
	KindEffortInvalid    ErrorKind = "EFFORT_INVALID"
	KindGradeOutOfRange  ErrorKind = "GRADE_OUT_OF_RANGE"
	KindBudgetOutOfRange ErrorKind = "BUDGET_OUT_OF_RANGE"
	KindWeightSum        ErrorKind = "WEIGHT_SUM_ERROR"
	KindDegenerateEffort ErrorKind = "DEGENERATE_EFFORT"
	KindInputTooLarge    ErrorKind = "INPUT_TOO_LARGE"
	KindInvalidBudget    ErrorKind = "INVALID_BUDGET"
	KindMissingGrade     ErrorKind = "MISSING_GRADE"
)

// IsFieldLevel reports whether the kind is recovered locally by clamping.
func (k ErrorKind) IsFieldLevel() bool {
	switch k {
	case KindWeightOutOfRange, KindEffortInvalid, KindGradeOutOfRange, KindBudgetOutOfRange:
		return true
	default:
		return false
	}
}

type ResultStatus string

const (
	StatusOptimal      ResultStatus = "OPTIMAL"
	StatusInvalidInput ResultStatus = "INVALID_INPUT"
)

// ZeroEffortPolicy decides what happens to a pending activity whose
// effort-per-grade is zero.
type ZeroEffortPolicy string

const (
	// ZeroEffortFreeMax grants grade 10 for zero hours and keeps the
	// activity out of the budget constraint.
	ZeroEffortFreeMax ZeroEffortPolicy = "free-max"
	// ZeroEffortReject fails the solve with DEGENERATE_EFFORT.
	ZeroEffortReject ZeroEffortPolicy = "reject"
)

// ValidZeroEffortPolicies is the canonical set of accepted policy strings.
var ValidZeroEffortPolicies = map[string]bool{
	string(ZeroEffortFreeMax): true,
	string(ZeroEffortReject):  true,
}
