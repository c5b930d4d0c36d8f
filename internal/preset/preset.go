// Package preset ships the built-in activity sets offered by the CLI and
// the editor.
package preset

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/importer"
)

//go:embed sets/*.json
var setsFS embed.FS

// ErrUnknownPreset is returned for a name with no built-in set.
var ErrUnknownPreset = errors.New("unknown preset")

// Names lists the built-in presets in alphabetical order.
func Names() []string {
	entries, _ := setsFS.ReadDir("sets")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Raw returns the preset file exactly as shipped.
func Raw(name string) ([]byte, error) {
	data, err := setsFS.ReadFile(path.Join("sets", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Get parses and normalizes a preset. Every call returns a fresh copy.
func Get(name string) (*importer.ActivitySet, error) {
	data, err := Raw(name)
	if err != nil {
		return nil, err
	}
	file, err := importer.ParseActivitySet(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	set, problems := importer.Convert(file)
	if !problems.Empty() {
		return nil, fmt.Errorf("preset %s: %w", name, problems)
	}
	return set, nil
}

// Next returns the preset after name, wrapping around. An unknown name
// yields the first preset.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
