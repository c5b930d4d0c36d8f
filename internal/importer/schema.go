package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ActivitySetFile is the top-level JSON structure of an activity set.
type ActivitySetFile struct {
	Name        string           `json:"name,omitempty" jsonschema_description:"Label for the activity set"`
	BudgetHours *RawValue        `json:"budget_hours,omitempty" jsonschema_description:"Weekly study hours available (0 to 168)"`
	Activities  []ActivityImport `json:"activities" validate:"required,min=1,dive"`
}

// ActivityImport is one table row. Numeric fields keep their raw text so
// that the field normalizers see exactly what the user wrote.
type ActivityImport struct {
	ID             string    `json:"id,omitempty" validate:"omitempty,max=64" jsonschema_description:"Optional stable reference; generated when missing"`
	Name           string    `json:"name" validate:"notblank,max=120"`
	Weight         RawValue  `json:"weight" validate:"required" jsonschema_description:"Share of the final average (0 to 1)"`
	EffortPerGrade RawValue  `json:"effort_per_grade" validate:"required" jsonschema_description:"Hours of study per grade point"`
	Done           bool      `json:"done,omitempty"`
	Grade          *RawValue `json:"grade,omitempty" validate:"required_if=Done true" jsonschema_description:"Known grade (0 to 10); required when done"`
}

// RawValue holds a numeric field as text. It decodes from a JSON number or
// a JSON string, so cell text such as "0,4" survives until normalization.
type RawValue string

func (r *RawValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a number or a string, got %s", data)
	}
	*r = RawValue(n.String())
	return nil
}

// MarshalJSON writes well-formed numbers as JSON numbers and anything else
// as a string.
func (r RawValue) MarshalJSON() ([]byte, error) {
	s := string(r)
	if _, err := strconv.ParseFloat(s, 64); err == nil && json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// Raw is a convenience constructor for tests and exporters.
func Raw(s string) *RawValue {
	r := RawValue(s)
	return &r
}

// LoadActivitySet reads and parses an activity-set JSON file.
func LoadActivitySet(path string) (*ActivitySetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseActivitySet(data)
}

// ParseActivitySet parses activity-set JSON. Unknown fields are rejected.
func ParseActivitySet(data []byte) (*ActivitySetFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var file ActivitySetFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing activity set: %w", err)
	}
	return &file, nil
}

// WriteActivitySet encodes file as indented JSON.
func WriteActivitySet(w io.Writer, file *ActivitySetFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encoding activity set: %w", err)
	}
	return nil
}
