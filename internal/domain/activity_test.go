package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapHours(t *testing.T) {
	a := Activity{EffortPerGrade: 2.5}
	assert.Equal(t, 25.0, a.CapHours())
}

func TestContribution(t *testing.T) {
	cases := []struct {
		name string
		a    Activity
		want float64
	}{
		{"done with grade", Activity{Weight: 0.4, Done: true, Grade: GradePtr(8)}, 3.2},
		{"done without grade", Activity{Weight: 0.4, Done: true}, 0},
		{"pending ignores grade", Activity{Weight: 0.4, Grade: GradePtr(8)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.a.Contribution(), 1e-12)
		})
	}
}

func TestToggleDone_SetsZeroGradeThenClears(t *testing.T) {
	a := Activity{Name: "Exam"}

	a.ToggleDone()
	require.True(t, a.Done)
	require.NotNil(t, a.Grade)
	assert.Equal(t, 0.0, *a.Grade)

	a.ToggleDone()
	assert.False(t, a.Done)
	assert.Nil(t, a.Grade)
}

func TestMarkDone_KeepsExistingGrade(t *testing.T) {
	a := Activity{Grade: GradePtr(7)}
	a.MarkDone()
	assert.Equal(t, 7.0, *a.Grade)
}

func TestCloneActivities_DeepCopiesGrade(t *testing.T) {
	in := []Activity{{Name: "A", Done: true, Grade: GradePtr(5)}}
	out := CloneActivities(in)

	*out[0].Grade = 9
	out[0].Name = "B"

	assert.Equal(t, 5.0, *in[0].Grade, "clone must not alias the caller's grade")
	assert.Equal(t, "A", in[0].Name)
	assert.Nil(t, CloneActivities(nil))
}

func TestLabel_FallsBackToPosition(t *testing.T) {
	assert.Equal(t, "Exam", Activity{Name: "Exam"}.Label(3))
	assert.Equal(t, "Activity 4", Activity{}.Label(3))
}

func TestWeightSum(t *testing.T) {
	acts := []Activity{{Weight: 0.4}, {Weight: 0.1}, {Weight: 0.5}}
	assert.InDelta(t, 1.0, WeightSum(acts), 1e-12)
	assert.Equal(t, 0.0, WeightSum(nil))
}

func TestErrorKind_IsFieldLevel(t *testing.T) {
	assert.True(t, KindWeightOutOfRange.IsFieldLevel())
	assert.True(t, KindBudgetOutOfRange.IsFieldLevel())
	assert.False(t, KindWeightSum.IsFieldLevel())
	assert.False(t, KindInputTooLarge.IsFieldLevel())
}

func TestFirstSet(t *testing.T) {
	assert.Equal(t, "semester", FirstSet("", "semester", "fresh"))
	assert.Equal(t, "", FirstSet[string]())
	assert.Equal(t, 2.5, FirstSet(0, 2.5))
}

func TestValueOr(t *testing.T) {
	budget := 12.0
	assert.Equal(t, 12.0, ValueOr(&budget, 10))
	assert.Equal(t, 10.0, ValueOr[float64](nil, 10))
}

func TestActivity_GradeOr(t *testing.T) {
	assert.Equal(t, 8.0, Activity{Done: true, Grade: GradePtr(8)}.GradeOr(0))
	assert.Equal(t, 0.0, Activity{}.GradeOr(0))
}
