package scenario

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads one YAML file. Unknown keys are rejected.
func Load(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &FieldError{Path: path, Err: errors.Join(ErrRead, err)}
	}
	return Parse(path, b)
}

// Parse decodes YAML content; path is used for naming and errors only.
func Parse(path string, b []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var doc YAMLFile
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &FieldError{Path: path, Err: errors.Join(ErrParse, err)}
	}

	if len(doc.Scenarios) > 0 && doc.YAMLScenario != (YAMLScenario{}) {
		return nil, &FieldError{Path: path, Field: "scenarios", Err: ErrMixedLayout}
	}
	if len(doc.Scenarios) == 0 {
		s, err := Map(path, -1, doc.YAMLScenario)
		if err != nil {
			return nil, err
		}
		return []Scenario{s}, nil
	}

	out := make([]Scenario, 0, len(doc.Scenarios))
	for i, y := range doc.Scenarios {
		s, err := Map(path, i, y)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadAll loads every file in order.
func LoadAll(paths []string) ([]Scenario, error) {
	var out []Scenario
	for _, p := range paths {
		list, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	return out, nil
}
