package validation

import "github.com/alexanderramin/gradeplan/internal/domain"

// RawActivity is one table row as typed by the user or read from a file.
type RawActivity struct {
	ID             string
	Name           string
	Weight         string
	EffortPerGrade string
	Done           bool
	Grade          string
}

// NormalizeRecord runs every field normalizer for one row. The grade is
// only read when the row is done; a pending row never carries a grade.
func NormalizeRecord(row int, raw RawActivity) (domain.Activity, []*ValidationError) {
	var errs []*ValidationError
	collect := func(err *ValidationError) {
		if err != nil {
			err.Row = row
			errs = append(errs, err)
		}
	}

	a := domain.Activity{ID: raw.ID, Name: raw.Name, Done: raw.Done}

	var err *ValidationError
	a.Weight, err = NormalizeWeight(raw.Weight)
	collect(err)
	a.EffortPerGrade, err = NormalizeEffort(raw.EffortPerGrade)
	collect(err)

	if raw.Done {
		g, gErr := NormalizeGrade(raw.Grade)
		collect(gErr)
		a.Grade = domain.GradePtr(g)
	}

	return a, errs
}

// NormalizeRecords normalizes a whole table, preserving row order.
func NormalizeRecords(rows []RawActivity) ([]domain.Activity, []*ValidationError) {
	out := make([]domain.Activity, 0, len(rows))
	var errs []*ValidationError
	for i, r := range rows {
		a, rowErrs := NormalizeRecord(i, r)
		out = append(out, a)
		errs = append(errs, rowErrs...)
	}
	return out, errs
}

// ToRaw renders a normalized activity back into raw cell text.
func ToRaw(a domain.Activity) RawActivity {
	raw := RawActivity{
		ID:             a.ID,
		Name:           a.Name,
		Weight:         FormatNumber(a.Weight),
		EffortPerGrade: FormatNumber(a.EffortPerGrade),
		Done:           a.Done,
	}
	if a.Done && a.Grade != nil {
		raw.Grade = FormatNumber(*a.Grade)
	}
	return raw
}
