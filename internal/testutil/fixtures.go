package testutil

import (
	"math/rand"

	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/google/uuid"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithWeight(w float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Weight = w
	}
}

func WithEffort(hoursPerGrade float64) ActivityOption {
	return func(a *domain.Activity) {
		a.EffortPerGrade = hoursPerGrade
	}
}

func WithGrade(g float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Done = true
		a.Grade = domain.GradePtr(g)
	}
}

func WithID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.ID = id
	}
}

// NewTestActivity returns a pending activity with weight 0.5 and effort 1
// unless options say otherwise.
func NewTestActivity(name string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:             uuid.New().String(),
		Name:           name,
		Weight:         0.5,
		EffortPerGrade: 1,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Pending is shorthand for a pending activity.
func Pending(name string, weight, effort float64) domain.Activity {
	return NewTestActivity(name, WithWeight(weight), WithEffort(effort))
}

// Done is shorthand for a completed activity.
func Done(name string, weight, grade float64) domain.Activity {
	return NewTestActivity(name, WithWeight(weight), WithEffort(1), WithGrade(grade))
}

// RandomActivities builds n activities with weights normalized to sum to 1.
// Roughly a third are done. Efforts lie in (0.1, 5.1) hours per grade point.
func RandomActivities(rng *rand.Rand, n int) []domain.Activity {
	acts := make([]domain.Activity, n)
	raw := make([]float64, n)
	total := 0.0
	for i := range raw {
		raw[i] = rng.Float64() + 0.01
		total += raw[i]
	}
	for i := range acts {
		acts[i] = domain.Activity{
			ID:             uuid.New().String(),
			Name:           "Activity",
			Weight:         raw[i] / total,
			EffortPerGrade: 0.1 + rng.Float64()*5,
		}
		if rng.Intn(3) == 0 {
			acts[i].Done = true
			acts[i].Grade = domain.GradePtr(float64(rng.Intn(101)) / 10)
		}
	}
	return acts
}

// SemesterActivities is the default table the editor opens with: two done
// activities and two pending ones, weights summing to 1.
func SemesterActivities() []domain.Activity {
	return []domain.Activity{
		NewTestActivity("Prova 1", WithWeight(0.4), WithEffort(2), WithGrade(8)),
		NewTestActivity("Trabalho 1", WithWeight(0.1), WithEffort(1), WithGrade(10)),
		Pending("Prova 2", 0.4, 3),
		Pending("Trabalho 2", 0.1, 1),
	}
}
