package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/importer"
	"github.com/alexanderramin/gradeplan/internal/preset"
)

// loadedSource is an activity table resolved from flags and config.
type loadedSource struct {
	Label       string // file path or preset name
	Preset      string // empty when loaded from a file
	Name        string
	BudgetHours float64
	Activities  []domain.Activity
	Problems    *importer.Problems
}

// loadSource resolves --file, then --preset, then the configured default
// preset. The budget comes from --budget, then the set, then config.
func loadSource(app *App, flags sourceFlags) (*loadedSource, error) {
	if flags.file != "" && flags.preset != "" {
		return nil, errors.New("use either --file or --preset, not both")
	}

	var (
		src = &loadedSource{}
		set *importer.ActivitySet
	)
	if flags.file != "" {
		loaded, problems, err := importer.Load(flags.file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", flags.file, err)
		}
		if loaded == nil {
			return nil, fmt.Errorf("loading %s: %w", flags.file, problems)
		}
		set, src.Problems, src.Label = loaded, problems, flags.file
	} else {
		name := domain.FirstSet(flags.preset, app.Config.Defaults.Preset)
		loaded, err := preset.Get(name)
		if err != nil {
			return nil, err
		}
		set, src.Label, src.Preset = loaded, name, name
	}

	src.Name = set.Name
	src.Activities = set.Activities
	src.BudgetHours = domain.ValueOr(set.BudgetHours, app.Config.Defaults.BudgetHours)
	if flags.budget.set {
		src.BudgetHours = flags.budget.hours
	}
	return src, nil
}

// reportFieldProblems prints clamped-field notices to w.
func reportFieldProblems(w io.Writer, p *importer.Problems) {
	if p.Empty() {
		return
	}
	fmt.Fprint(w, formatter.StyleYellow.Render("Some values were invalid and count as 0:")+"\n")
	fmt.Fprint(w, formatter.FormatErrors(p.Errors()))
}
