package domain

import "fmt"

const (
	// MaxGrade is the top of the grading scale.
	MaxGrade = 10.0

	// MaxWeeklyHours bounds a weekly study budget (24 * 7).
	MaxWeeklyHours = 168.0
)

// Activity is a graded task contributing Weight to the final average.
// Grade is set only when Done; for pending activities it is an engine output.
type Activity struct {
	ID             string
	Name           string
	Weight         float64
	EffortPerGrade float64
	Done           bool
	Grade          *float64
}

// IsPending reports whether the activity still needs study effort.
func (a Activity) IsPending() bool {
	return !a.Done
}

// CapHours is the number of hours needed to reach MaxGrade.
func (a Activity) CapHours() float64 {
	return MaxGrade * a.EffortPerGrade
}

// Contribution returns Weight*Grade for a done activity, 0 otherwise.
func (a Activity) Contribution() float64 {
	if !a.Done || a.Grade == nil {
		return 0
	}
	return a.Weight * *a.Grade
}

// Label returns Name, falling back to a positional label for unnamed rows.
func (a Activity) Label(index int) string {
	return FirstSet(a.Name, fmt.Sprintf("Activity %d", index+1))
}

// MarkDone flags the activity as completed with grade 0. An existing grade
// is kept.
func (a *Activity) MarkDone() {
	a.Done = true
	if a.Grade == nil {
		zero := 0.0
		a.Grade = &zero
	}
}

// MarkPending clears the done flag and the grade.
func (a *Activity) MarkPending() {
	a.Done = false
	a.Grade = nil
}

// ToggleDone flips between done and pending.
func (a *Activity) ToggleDone() {
	if a.Done {
		a.MarkPending()
		return
	}
	a.MarkDone()
}

// GradePtr returns a pointer to a copy of g.
func GradePtr(g float64) *float64 {
	return &g
}

// CloneActivities returns a deep copy so callers can hand out snapshots.
func CloneActivities(in []Activity) []Activity {
	if in == nil {
		return nil
	}
	out := make([]Activity, len(in))
	for i, a := range in {
		out[i] = a
		if a.Grade != nil {
			out[i].Grade = GradePtr(*a.Grade)
		}
	}
	return out
}

// WeightSum returns the sum of all activity weights.
func WeightSum(activities []Activity) float64 {
	sum := 0.0
	for _, a := range activities {
		sum += a.Weight
	}
	return sum
}
