package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gradeplan/internal/config"
	"github.com/alexanderramin/gradeplan/internal/importer"
	"github.com/alexanderramin/gradeplan/internal/preset"
	"github.com/alexanderramin/gradeplan/internal/service"
	"github.com/alexanderramin/gradeplan/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App with the default engine and config.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Plan:   service.NewPlanService(nil),
		Config: config.DefaultConfig(),
	}
}

func execute(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(out.String()), stripANSI(errOut.String()), err
}

func writeSet(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "set.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestOptimizeCmd_DefaultPreset(t *testing.T) {
	out, _, err := execute(t, testApp(t), "optimize")

	require.NoError(t, err)
	assert.Contains(t, out, "STUDY PLAN")
	assert.Contains(t, out, "Prova 2")
	assert.Contains(t, out, "5.53")
}

func TestOptimizeCmd_BudgetCoversEveryCap(t *testing.T) {
	out, _, err := execute(t, testApp(t), "optimize", "--preset", "semester", "--budget", "45")

	require.NoError(t, err)
	assert.Contains(t, out, "9.20")
	assert.Contains(t, out, "unspent 5h")
}

func TestOptimizeCmd_BudgetAcceptsDecimalComma(t *testing.T) {
	out, _, err := execute(t, testApp(t), "optimize", "-b", "12,5")

	require.NoError(t, err)
	assert.Contains(t, out, "budget 12.5h")
}

func TestOptimizeCmd_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"budget above week", []string{"optimize", "--budget", "200"}, "between 0 and 168"},
		{"unknown format", []string{"optimize", "--format", "yaml"}, `"text" or "json"`},
		{"file and preset", []string{"optimize", "--file", "x.json", "--preset", "semester"}, "not both"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, testApp(t), tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestOptimizeCmd_JSON(t *testing.T) {
	out, _, err := execute(t, testApp(t), "optimize", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "OPTIMAL", doc["status"])
	assert.InDelta(t, 5.5333, doc["weighted_average"], 1e-4)
}

func TestOptimizeCmd_ConfigFormatDefault(t *testing.T) {
	app := testApp(t)
	app.Config.Output.Format = config.FormatJSON

	out, _, err := execute(t, app, "optimize")

	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestOptimizeCmd_WeightSumFailure(t *testing.T) {
	path := writeSet(t, `{"activities": [
		{"name": "a", "weight": 0.5, "effort_per_grade": 1},
		{"name": "b", "weight": 0.4, "effort_per_grade": 1}
	]}`)

	out, _, err := execute(t, testApp(t), "optimize", "--file", path)

	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, out, "Weights sum to 0.9000")
}

func TestOptimizeCmd_ClampedFieldsAreReported(t *testing.T) {
	path := writeSet(t, `{"budget_hours": 4, "activities": [
		{"name": "a", "weight": 1, "effort_per_grade": "lots"}
	]}`)

	out, errOut, err := execute(t, testApp(t), "optimize", "--file", path)

	require.NoError(t, err)
	assert.Contains(t, errOut, "count as 0")
	assert.Contains(t, errOut, "EFFORT_INVALID")
	assert.Contains(t, out, "10.00")
}

func TestOptimizeCmd_StructuralProblemsFail(t *testing.T) {
	path := writeSet(t, `{"activities": []}`)

	_, _, err := execute(t, testApp(t), "optimize", "--file", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "activities")
}

func TestCheckCmd(t *testing.T) {
	out, _, err := execute(t, testApp(t), "check", "--preset", "fresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Ready to optimize.")

	path := writeSet(t, `{"activities": [
		{"name": "a", "weight": 0.3, "effort_per_grade": 0},
		{"name": "b", "weight": 2, "effort_per_grade": 1}
	]}`)
	out, _, err = execute(t, testApp(t), "check", "--file", path)
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, out, "WEIGHT_OUT_OF_RANGE")
	assert.Contains(t, out, "WEIGHT_SUM_ERROR")
}

func TestPresetCmds(t *testing.T) {
	out, _, err := execute(t, testApp(t), "preset", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "semester  (default)")
	assert.Contains(t, out, "fresh")

	out, _, err = execute(t, testApp(t), "preset", "show", "fresh")
	require.NoError(t, err)
	assert.Contains(t, out, "FRESH START")
	assert.Contains(t, out, "Final exam")

	_, _, err = execute(t, testApp(t), "preset", "show", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, preset.ErrUnknownPreset))
}

func TestPresetExportCmd_WritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, _, err := execute(t, testApp(t), "preset", "export", "finals", "-o", path)
	require.NoError(t, err)

	set, problems, err := importer.Load(path)
	require.NoError(t, err)
	assert.True(t, problems.Empty())
	assert.Equal(t, "Finals week", set.Name)
}

func TestSchemaCmd(t *testing.T) {
	out, _, err := execute(t, testApp(t), "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "effort_per_grade")
}

func TestAboutCmd(t *testing.T) {
	out, _, err := execute(t, testApp(t), "about")
	require.NoError(t, err)
	assert.Contains(t, out, "ABOUT GRADEPLAN")
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	out, _, err := execute(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_InteractiveOpensEditor(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var opened EditorModel
	app.RunEditor = func(m EditorModel) (EditorModel, error) {
		opened = m
		return m, nil
	}

	_, _, err := execute(t, app)

	require.NoError(t, err)
	assert.Len(t, opened.Activities(), 4)
	assert.Equal(t, 10.0, opened.BudgetHours())
}

func TestEditCmd_SavesAndPrintsResult(t *testing.T) {
	app := testApp(t)
	app.RunEditor = func(m EditorModel) (EditorModel, error) {
		d := teatest.New(t, m)
		d.Press("+")
		d.Press("enter")
		return d.Model.(EditorModel), nil
	}
	path := filepath.Join(t.TempDir(), "edited.json")

	out, _, err := execute(t, app, "edit", "--preset", "semester", "--save", path)

	require.NoError(t, err)
	assert.Contains(t, out, "STUDY PLAN")
	assert.Contains(t, out, "Saved")

	set, _, err := importer.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 11.0, *set.BudgetHours)
	assert.Len(t, set.Activities, 4)
}

func TestEditCmd_EditorErrorIsWrapped(t *testing.T) {
	app := testApp(t)
	app.RunEditor = func(m EditorModel) (EditorModel, error) {
		return m, errors.New("no tty")
	}

	_, _, err := execute(t, app, "edit")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "running editor: no tty")
}
