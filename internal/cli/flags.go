package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/config"
	"github.com/alexanderramin/gradeplan/internal/validation"
	"github.com/spf13/pflag"
)

// formatValue is a pflag.Value restricted to the supported output formats.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }
func (f *formatValue) Type() string   { return "format" }

func (f *formatValue) Set(s string) error {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case config.FormatText, config.FormatJSON:
		*f = formatValue(s)
		return nil
	default:
		return fmt.Errorf("must be %q or %q", config.FormatText, config.FormatJSON)
	}
}

// budgetValue is a pflag.Value that runs the budget through the field
// normalizer, so "12,5" is accepted and out-of-range values are rejected.
type budgetValue struct {
	hours float64
	set   bool
}

var _ pflag.Value = (*budgetValue)(nil)

func (b *budgetValue) String() string {
	if !b.set {
		return ""
	}
	return validation.FormatNumber(b.hours)
}

func (b *budgetValue) Type() string { return "hours" }

func (b *budgetValue) Set(s string) error {
	h, err := validation.NormalizeBudget(s)
	if err != nil {
		return fmt.Errorf("must be a number of hours between 0 and 168")
	}
	b.hours, b.set = h, true
	return nil
}

// sourceFlags selects where the activity table comes from.
type sourceFlags struct {
	file   string
	preset string
	budget budgetValue
}

func (s *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.file, "file", "f", "", "Activity-set JSON file")
	fs.StringVarP(&s.preset, "preset", "p", "", "Built-in preset name (see 'gradeplan preset list')")
	fs.VarP(&s.budget, "budget", "b", "Weekly study hours (0 to 168)")
}
