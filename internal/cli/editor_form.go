package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/validation"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// gradeplanHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func gradeplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// activityFields holds form-bound values for the add/edit activity form.
type activityFields struct {
	name   string
	weight string
	effort string
	done   bool
	grade  string
}

func fieldsFromActivity(a domain.Activity) *activityFields {
	raw := validation.ToRaw(a)
	return &activityFields{
		name:   raw.Name,
		weight: raw.Weight,
		effort: raw.EffortPerGrade,
		done:   raw.Done,
		grade:  raw.Grade,
	}
}

// fieldValidator adapts a field normalizer to a huh validation func.
func fieldValidator(normalize func(string) (float64, *validation.ValidationError), hint string) func(string) error {
	return func(s string) error {
		if _, err := normalize(s); err != nil {
			return errors.New(hint)
		}
		return nil
	}
}

var (
	validateWeightInput = fieldValidator(validation.NormalizeWeight, "enter a weight between 0 and 1")
	validateEffortInput = fieldValidator(validation.NormalizeEffort, "enter zero or more hours per grade point")
	validateGradeInput  = fieldValidator(validation.NormalizeGrade, "enter a grade between 0 and 10")
)

// newActivityForm builds the add/edit form. The grade group only shows for
// done activities.
func newActivityForm(title string, f *activityFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title+": name").
				Placeholder("Exam 1").
				Value(&f.name),
			huh.NewInput().
				Title("Weight (0 to 1)").
				Placeholder("0.4").
				Value(&f.weight).
				Validate(validateWeightInput),
			huh.NewInput().
				Title("Hours per grade point").
				Placeholder("2").
				Value(&f.effort).
				Validate(validateEffortInput),
			huh.NewConfirm().
				Title("Already done?").
				Affirmative("Yes").
				Negative("No").
				Value(&f.done),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Grade obtained (0 to 10)").
				Placeholder("8").
				Value(&f.grade).
				Validate(validateGradeInput),
		).WithHideFunc(func() bool { return !f.done }),
	).WithTheme(gradeplanHuhTheme()).WithShowHelp(false)
}

// applyActivityFields normalizes form values into an activity at row index.
// An empty id gets a fresh one.
func applyActivityFields(index int, id string, f *activityFields) (domain.Activity, error) {
	a, errs := validation.NormalizeRecord(index, validation.RawActivity{
		ID:             id,
		Name:           f.name,
		Weight:         f.weight,
		EffortPerGrade: f.effort,
		Done:           f.done,
		Grade:          f.grade,
	})
	if len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return domain.Activity{}, fmt.Errorf("invalid activity: %w", errors.Join(joined...))
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return a, nil
}
