// Package importer reads client briefs: a lead and its feature list written
// by hand in JSON or YAML.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Brief is the top-level structure of a brief file.
type Brief struct {
	Lead     LeadImport      `json:"lead" yaml:"lead"`
	Features []FeatureImport `json:"features" yaml:"features"`
}

type LeadImport struct {
	ClientName  string `json:"client_name" yaml:"client_name"`
	ProjectName string `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	BudgetMin   *int64 `json:"budget_min,omitempty" yaml:"budget_min,omitempty"`
	BudgetMax   *int64 `json:"budget_max,omitempty" yaml:"budget_max,omitempty"`
	Deadline    string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
}

// FeatureImport is one line of the brief. Complexity defaults to M and
// in_scope to true.
type FeatureImport struct {
	Name       string  `json:"name" yaml:"name"`
	Hours      float64 `json:"hours" yaml:"hours"`
	Complexity string  `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	InScope    *bool   `json:"in_scope,omitempty" yaml:"in_scope,omitempty"`
}

// LoadBrief reads a brief, choosing YAML for .yaml/.yml files and JSON
// otherwise.
func LoadBrief(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (*Brief, error) {
	var b Brief
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing brief: %w", err)
	}
	return &b, nil
}

func ParseYAML(data []byte) (*Brief, error) {
	var b Brief
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing brief: %w", err)
	}
	return &b, nil
}
