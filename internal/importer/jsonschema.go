package importer

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes a numeric cell: either a JSON number or its text.
func (RawValue) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string"},
		},
	}
}

// Schema returns the JSON Schema of the activity-set file format.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&ActivitySetFile{})
	s.Title = "gradeplan activity set"
	return json.MarshalIndent(s, "", "  ")
}
