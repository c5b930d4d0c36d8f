package importer

import (
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/validation"
	"github.com/google/uuid"
)

// ActivitySet is a normalized activity table ready for the engine.
type ActivitySet struct {
	Name        string
	BudgetHours *float64 // nil when the file does not set a budget
	Activities  []domain.Activity
}

// Problems groups everything that went wrong while importing a file.
type Problems struct {
	Structural []error
	Fields     []*validation.ValidationError
}

func (p *Problems) Empty() bool {
	return p == nil || (len(p.Structural) == 0 && len(p.Fields) == 0)
}

// Errors flattens both groups, structural problems first.
func (p *Problems) Errors() []error {
	if p == nil {
		return nil
	}
	out := make([]error, 0, len(p.Structural)+len(p.Fields))
	out = append(out, p.Structural...)
	for _, fe := range p.Fields {
		out = append(out, fe)
	}
	return out
}

func (p *Problems) Error() string {
	errs := p.Errors()
	switch len(errs) {
	case 0:
		return "no problems"
	case 1:
		return errs[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", errs[0], len(errs)-1)
	}
}

// Convert validates and normalizes a parsed file. Structural problems stop
// the conversion. Field problems do not: the offending values are clamped
// to 0 and reported alongside the set.
func Convert(file *ActivitySetFile) (*ActivitySet, *Problems) {
	if errs := ValidateActivitySet(file); len(errs) > 0 {
		return nil, &Problems{Structural: errs}
	}

	rows := make([]validation.RawActivity, len(file.Activities))
	for i, a := range file.Activities {
		rows[i] = validation.RawActivity{
			ID:             a.ID,
			Name:           a.Name,
			Weight:         string(a.Weight),
			EffortPerGrade: string(a.EffortPerGrade),
			Done:           a.Done,
		}
		if a.Grade != nil {
			rows[i].Grade = string(*a.Grade)
		}
	}

	acts, fieldErrs := validation.NormalizeRecords(rows)
	for i := range acts {
		if acts[i].ID == "" {
			acts[i].ID = uuid.NewString()
		}
	}

	set := &ActivitySet{Name: file.Name, Activities: acts}
	if file.BudgetHours != nil {
		b, err := validation.NormalizeBudget(string(*file.BudgetHours))
		if err != nil {
			fieldErrs = append(fieldErrs, err)
		}
		set.BudgetHours = &b
	}

	if len(fieldErrs) == 0 {
		return set, nil
	}
	return set, &Problems{Fields: fieldErrs}
}

// Load reads, validates and normalizes an activity-set file. A non-nil set
// may be returned together with field problems.
func Load(path string) (*ActivitySet, *Problems, error) {
	file, err := LoadActivitySet(path)
	if err != nil {
		return nil, nil, err
	}
	set, problems := Convert(file)
	return set, problems, nil
}

// FromActivities builds the file form of a table for export.
func FromActivities(name string, budgetHours float64, acts []domain.Activity) *ActivitySetFile {
	file := &ActivitySetFile{
		Name:        name,
		BudgetHours: Raw(validation.FormatNumber(budgetHours)),
		Activities:  make([]ActivityImport, len(acts)),
	}
	for i, a := range acts {
		raw := validation.ToRaw(a)
		file.Activities[i] = ActivityImport{
			ID:             raw.ID,
			Name:           a.Label(i),
			Weight:         RawValue(raw.Weight),
			EffortPerGrade: RawValue(raw.EffortPerGrade),
			Done:           raw.Done,
		}
		if a.Done {
			file.Activities[i].Grade = Raw(raw.Grade)
		}
	}
	return file
}
