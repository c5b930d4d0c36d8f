package cli

import (
	"testing"

	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/service"
	"github.com/alexanderramin/gradeplan/internal/teatest"
	"github.com/alexanderramin/gradeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, acts []domain.Activity, budget float64) *teatest.Driver {
	t.Helper()
	src := &loadedSource{
		Label:       "semester",
		Preset:      "semester",
		Name:        "Semester",
		BudgetHours: budget,
		Activities:  acts,
	}
	return teatest.New(t, NewEditorModel(service.NewPlanService(nil), src), teatest.WithSize(120, 40))
}

func editorOf(d *teatest.Driver) EditorModel {
	return d.Model.(EditorModel)
}

func TestEditor_InitialView(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	view := stripANSI(d.View())
	assert.Contains(t, view, "GRADEPLAN")
	assert.Contains(t, view, "Prova 1")
	assert.Contains(t, view, "Trabalho 2")
	assert.Contains(t, view, "Press enter to calculate.")
	assert.Contains(t, view, "10h")
}

func TestEditor_Calculate(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("enter")

	res := editorOf(d).Result()
	require.NotNil(t, res)
	assert.True(t, res.IsOptimal())
	assert.InDelta(t, 5.5333, res.WeightedAverage, 1e-4)
	view := stripANSI(d.View())
	assert.Contains(t, view, "Best weighted average")
	assert.Contains(t, view, "5.53")
	assert.Contains(t, view, "3.33")
}

func TestEditor_ChangesInvalidateResult(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)
	d.Press("enter")
	require.NotNil(t, editorOf(d).Result())

	d.Press("+")

	assert.Nil(t, editorOf(d).Result())
	assert.Contains(t, stripANSI(d.View()), "Press enter to calculate.")
}

func TestEditor_BudgetWrapsAround(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), domain.MaxWeeklyHours)

	d.Press("+")
	assert.Equal(t, 0.0, editorOf(d).BudgetHours())

	d.Press("-")
	assert.Equal(t, float64(domain.MaxWeeklyHours), editorOf(d).BudgetHours())

	d.Press("-")
	assert.Equal(t, float64(domain.MaxWeeklyHours-1), editorOf(d).BudgetHours())
}

func TestEditor_ToggleDone(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("space")
	first := editorOf(d).Activities()[0]
	assert.False(t, first.Done)
	assert.Nil(t, first.Grade)

	d.Press("down")
	d.Press("down")
	d.Press("space")
	third := editorOf(d).Activities()[2]
	assert.True(t, third.Done)
	require.NotNil(t, third.Grade)
	assert.Equal(t, 0.0, *third.Grade)
}

func TestEditor_Delete(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("down")
	d.Press("x")

	acts := editorOf(d).Activities()
	require.Len(t, acts, 3)
	assert.Equal(t, "Prova 2", acts[1].Name)
	assert.Contains(t, stripANSI(d.View()), "Deleted Trabalho 1.")
}

func TestEditor_DeleteKeepsLastActivity(t *testing.T) {
	d := newTestEditor(t, []domain.Activity{testutil.Pending("Only", 1, 1)}, 10)

	d.Press("x")

	assert.Len(t, editorOf(d).Activities(), 1)
	assert.Contains(t, stripANSI(d.View()), "at least one activity")
}

func TestEditor_NextPreset(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("p")

	m := editorOf(d)
	assert.Equal(t, "Finals week", m.Name())
	assert.Equal(t, 30.0, m.BudgetHours())
	assert.Contains(t, stripANSI(d.View()), "Loaded preset finals.")
}

func TestEditor_WeightSumFailureIsShown(t *testing.T) {
	acts := []domain.Activity{testutil.Pending("a", 0.5, 1), testutil.Pending("b", 0.4, 1)}
	d := newTestEditor(t, acts, 10)

	d.Press("enter")

	assert.False(t, editorOf(d).Result().IsOptimal())
	assert.Contains(t, stripANSI(d.View()), "Weights sum to 0.9000")
}

func TestEditor_ZeroEffortWarning(t *testing.T) {
	acts := []domain.Activity{testutil.Pending("Reading", 0.5, 0), testutil.Pending("Exam", 0.5, 2)}
	d := newTestEditor(t, acts, 4)

	d.Press("enter")

	assert.Contains(t, stripANSI(d.View()), "Reading has zero effort per grade")
}

func TestEditor_EngineErrorIsShown(t *testing.T) {
	acts := []domain.Activity{testutil.Pending("a", 1, 1)}
	acts[0].Done = true
	d := newTestEditor(t, acts, 10)

	d.Press("enter")

	assert.Nil(t, editorOf(d).Result())
	assert.Contains(t, stripANSI(d.View()), "MISSING_GRADE")
}

func TestEditor_EditFormOpensAndCancels(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("e")
	assert.Contains(t, stripANSI(d.View()), "Hours per grade point")

	d.Press("esc")
	view := stripANSI(d.View())
	assert.Contains(t, view, "Cancelled.")
	assert.Contains(t, view, "Prova 1")
	assert.Len(t, editorOf(d).Activities(), 4)
}

func TestEditor_AddFormCancelDoesNotAdd(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("a")
	assert.Contains(t, stripANSI(d.View()), "New activity")
	d.Press("esc")

	assert.Len(t, editorOf(d).Activities(), 4)
}

func TestEditor_About(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("?")
	assert.Contains(t, stripANSI(d.View()), "ABOUT GRADEPLAN")

	d.Press("z")
	assert.Contains(t, stripANSI(d.View()), "Prova 1")
}

func TestEditor_Quit(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)

	d.Press("q")

	assert.True(t, d.Quitting)
}

func TestEditor_CommitFormReplacesRow(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)
	m := editorOf(d)
	id := m.activities[2].ID

	m.form = &formState{index: 2, fields: &activityFields{name: "Final", weight: "0,4", effort: "2.5"}}
	m.commitForm()

	got := m.Activities()[2]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Final", got.Name)
	assert.Equal(t, 2.5, got.EffortPerGrade)
	assert.Equal(t, modeTable, m.mode)
	assert.Equal(t, "Saved Final.", m.status)
}

func TestEditor_CommitFormAppends(t *testing.T) {
	d := newTestEditor(t, testutil.SemesterActivities(), 10)
	m := editorOf(d)

	m.form = &formState{index: -1, fields: &activityFields{weight: "0", effort: "1", done: true, grade: "7"}}
	m.commitForm()

	acts := m.Activities()
	require.Len(t, acts, 5)
	assert.NotEmpty(t, acts[4].ID)
	assert.Equal(t, 7.0, *acts[4].Grade)
	assert.Equal(t, "Saved Activity 5.", m.status)
}

func TestApplyActivityFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  activityFields
		wantErr string
	}{
		{"valid pending", activityFields{name: "x", weight: "0.2", effort: "1"}, ""},
		{"decimal comma", activityFields{weight: "0,2", effort: "1,5"}, ""},
		{"weight too high", activityFields{weight: "1.2", effort: "1"}, "WEIGHT_OUT_OF_RANGE"},
		{"negative effort", activityFields{weight: "0.2", effort: "-1"}, "EFFORT_INVALID"},
		{"done without grade", activityFields{weight: "0.2", effort: "1", done: true}, "GRADE_OUT_OF_RANGE"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := applyActivityFields(0, "", &tc.fields)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, a.ID)
		})
	}
}

func TestFieldValidators(t *testing.T) {
	assert.NoError(t, validateWeightInput("0,5"))
	assert.EqualError(t, validateWeightInput("2"), "enter a weight between 0 and 1")
	assert.NoError(t, validateEffortInput("0"))
	assert.Error(t, validateEffortInput("abc"))
	assert.NoError(t, validateGradeInput("10"))
	assert.Error(t, validateGradeInput("10.5"))
}

func TestWrapBudget(t *testing.T) {
	assert.Equal(t, 0.0, wrapBudget(169))
	assert.Equal(t, 168.0, wrapBudget(-1))
	assert.Equal(t, 12.5, wrapBudget(12.5))
}
