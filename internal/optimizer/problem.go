package optimizer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

// Candidate is one decision variable: the study hours of a pending activity.
// The objective coefficient Rate = weight / effortPerGrade is precomputed,
// so the objective stays linear in hours.
type Candidate struct {
	Index    int // position in the full input list
	Activity domain.Activity
	Rate     float64
	CapHours float64
	Free     bool // zero effort, excluded from the budget constraint
}

// Problem is the allocation LP in the shape the greedy solver needs.
type Problem struct {
	Candidates []Candidate // pending activities, input order
	Offset     float64     // constant done-activity term of the objective
}

// BuildProblem splits activities into the constant done term and the
// pending decision variables. It fails on structural defects the solver
// cannot represent.
func BuildProblem(activities []domain.Activity, policy domain.ZeroEffortPolicy) (*Problem, error) {
	p := &Problem{}
	for i, a := range activities {
		if err := checkRecord(i, a); err != nil {
			return nil, err
		}
		if a.Done {
			p.Offset += a.Contribution()
			continue
		}

		c, err := newCandidate(i, a, policy)
		if err != nil {
			return nil, err
		}
		p.Candidates = append(p.Candidates, c)
	}
	return p, nil
}

// checkRecord rejects weights and done grades outside the validator's ranges.
func checkRecord(index int, a domain.Activity) error {
	if math.IsNaN(a.Weight) || a.Weight < 0 || a.Weight > 1 {
		return &EngineError{
			Kind: domain.KindWeightOutOfRange, Index: index, Name: a.Name,
			Message: fmt.Sprintf("weight must be between 0 and 1, got %v", a.Weight),
		}
	}
	if !a.Done {
		return nil
	}
	if a.Grade == nil {
		return &EngineError{
			Kind: domain.KindMissingGrade, Index: index, Name: a.Name,
			Message: "a completed activity must have a grade",
		}
	}
	if g := *a.Grade; math.IsNaN(g) || g < 0 || g > domain.MaxGrade {
		return &EngineError{
			Kind: domain.KindGradeOutOfRange, Index: index, Name: a.Name,
			Message: fmt.Sprintf("grade must be between 0 and 10, got %v", g),
		}
	}
	return nil
}

func newCandidate(index int, a domain.Activity, policy domain.ZeroEffortPolicy) (Candidate, error) {
	effort := a.EffortPerGrade
	if math.IsNaN(effort) || math.IsInf(effort, 0) || effort < 0 {
		return Candidate{}, &EngineError{
			Kind: domain.KindDegenerateEffort, Index: index, Name: a.Name,
			Message: "effort per grade must be a finite, non-negative number",
		}
	}
	if effort == 0 {
		if policy == domain.ZeroEffortReject {
			return Candidate{}, &EngineError{
				Kind: domain.KindDegenerateEffort, Index: index, Name: a.Name,
				Message: "effort per grade is zero; set a positive value or mark the activity done",
			}
		}
		return Candidate{Index: index, Activity: a, Free: true}, nil
	}
	return Candidate{
		Index:    index,
		Activity: a,
		Rate:     a.Weight / effort,
		CapHours: a.CapHours(),
	}, nil
}

// PendingCount counts activities that become decision variables.
func PendingCount(activities []domain.Activity) int {
	n := 0
	for _, a := range activities {
		if a.IsPending() {
			n++
		}
	}
	return n
}
