package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios negotiate a schema pair and assert on the outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// SourceSchema and TargetSchema are schema file paths (CUE, YAML,
	// or JSON), relative to the scenario file location.
	SourceSchema string `yaml:"source_schema"`
	TargetSchema string `yaml:"target_schema"`

	// Record is an optional source record to convert through the
	// negotiated rules. The converted record lands in the snapshot.
	Record map[string]any `yaml:"record,omitempty"`

	// RequestID is an optional fixed request ID for deterministic
	// snapshots. Defaults to "test-request-default".
	RequestID string `yaml:"request_id,omitempty"`

	// Threshold overrides the approval threshold when non-zero.
	Threshold float64 `yaml:"threshold,omitempty"`

	// Floor overrides the unmatched floor when non-zero.
	Floor float64 `yaml:"floor,omitempty"`

	// Expect states the required negotiation outcome.
	Expect Expectations `yaml:"expect"`
}

// Expectations validate the negotiation result before any golden
// comparison. Alignments is a subset match on (source, target, rule).
type Expectations struct {
	// Decision is the required outcome: "approved" or "needs_review".
	Decision string `yaml:"decision"`

	// Alignments lists required source-to-target pairs. Pairs not
	// listed are not checked; listed pairs must be present with the
	// stated rule kind.
	Alignments []ExpectedAlignment `yaml:"alignments,omitempty"`

	// Unmatched lists source fields that must go unmatched, in order.
	Unmatched []string `yaml:"unmatched,omitempty"`
}

// ExpectedAlignment pins one source field to a target and rule kind.
type ExpectedAlignment struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Rule   string `yaml:"rule,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Schema paths are
// resolved relative to the scenario file's directory. Returns an error
// if the file is malformed, contains unknown fields (typos), or is
// missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	base := filepath.Dir(path)
	if scenario.SourceSchema != "" && !filepath.IsAbs(scenario.SourceSchema) {
		scenario.SourceSchema = filepath.Join(base, scenario.SourceSchema)
	}
	if scenario.TargetSchema != "" && !filepath.IsAbs(scenario.TargetSchema) {
		scenario.TargetSchema = filepath.Join(base, scenario.TargetSchema)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.SourceSchema == "" {
		return fmt.Errorf("source_schema is required")
	}
	if s.TargetSchema == "" {
		return fmt.Errorf("target_schema is required")
	}

	for _, path := range []string{s.SourceSchema, s.TargetSchema} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("schema file not found: %s", path)
		}
	}

	switch s.Expect.Decision {
	case "approved", "needs_review":
	case "":
		return fmt.Errorf("expect.decision is required")
	default:
		return fmt.Errorf("expect.decision must be %q or %q, got %q", "approved", "needs_review", s.Expect.Decision)
	}

	for i, a := range s.Expect.Alignments {
		if a.Source == "" {
			return fmt.Errorf("expect.alignments[%d]: source is required", i)
		}
		if a.Target == "" {
			return fmt.Errorf("expect.alignments[%d]: target is required", i)
		}
	}

	return nil
}
