package harness

import (
	"context"
	"fmt"
	"math"

	"github.com/concordlabs/concord/internal/cli"
	"github.com/concordlabs/concord/internal/negotiate"
)

// DefaultRequestID is the fixed request ID scenarios run under when
// they declare none.
const DefaultRequestID = "test-request-default"

// Snapshot is the deterministic record of one scenario execution,
// serialized to JSON for golden comparison. Confidences are rounded to
// four decimals and no wall-clock fields are included.
type Snapshot struct {
	Scenario          string             `json:"scenario"`
	RequestID         string             `json:"request_id"`
	SourceSchema      string             `json:"source_schema"`
	TargetSchema      string             `json:"target_schema"`
	Decision          negotiate.Decision `json:"decision"`
	OverallConfidence float64            `json:"overall_confidence"`
	Alignments        []AlignmentRow     `json:"alignments"`
	Unmatched         []string           `json:"unmatched,omitempty"`
	Record            map[string]any     `json:"record,omitempty"`
	Warnings          []string           `json:"warnings,omitempty"`
}

// AlignmentRow is one alignment in snapshot form.
type AlignmentRow struct {
	Source     string            `json:"source"`
	Target     string            `json:"target"`
	Confidence float64           `json:"confidence"`
	Type       string            `json:"type"`
	Basis      string            `json:"basis"`
	Rule       string            `json:"rule"`
	Params     map[string]string `json:"params,omitempty"`
}

// Run executes a scenario: negotiate the schema pair, check the
// expectations, and build the snapshot. Expectation failures are
// returned as errors; golden comparison is the caller's concern.
func Run(scenario *Scenario) (*Snapshot, error) {
	source, err := cli.LoadSchema(scenario.SourceSchema)
	if err != nil {
		return nil, fmt.Errorf("load source schema: %w", err)
	}
	target, err := cli.LoadSchema(scenario.TargetSchema)
	if err != nil {
		return nil, fmt.Errorf("load target schema: %w", err)
	}

	requestID := scenario.RequestID
	if requestID == "" {
		requestID = DefaultRequestID
	}

	opts := []negotiate.Option{
		negotiate.WithRequestIDs(negotiate.NewFixedIDGenerator(requestID)),
	}
	if scenario.Threshold > 0 {
		opts = append(opts, negotiate.WithConfidenceThreshold(scenario.Threshold))
	}
	if scenario.Floor > 0 {
		opts = append(opts, negotiate.WithMinFloor(scenario.Floor))
	}

	result, err := negotiate.New(opts...).Negotiate(context.Background(), source, target)
	if err != nil {
		return nil, fmt.Errorf("negotiate: %w", err)
	}

	if err := checkExpectations(scenario, result); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Scenario:          scenario.Name,
		RequestID:         result.ID,
		SourceSchema:      result.SourceSchema,
		TargetSchema:      result.TargetSchema,
		Decision:          result.Decision,
		OverallConfidence: roundConfidence(result.OverallConfidence),
		Unmatched:         result.Unmatched,
	}
	for _, a := range result.Alignments {
		snapshot.Alignments = append(snapshot.Alignments, AlignmentRow{
			Source:     a.Source.Name,
			Target:     a.Target.Name,
			Confidence: roundConfidence(a.Confidence),
			Type:       string(a.Type),
			Basis:      string(a.Basis),
			Rule:       string(a.Rule.Kind),
			Params:     a.Rule.Params,
		})
	}

	if scenario.Record != nil {
		record, warnings := negotiate.Transform(result, scenario.Record)
		snapshot.Record = record
		for _, w := range warnings {
			snapshot.Warnings = append(snapshot.Warnings, fmt.Sprintf("%s: %s", w.Field, w.Message))
		}
	}

	return snapshot, nil
}

// checkExpectations verifies the scenario's expect clause against the
// negotiation result.
func checkExpectations(scenario *Scenario, result *negotiate.Result) error {
	if string(result.Decision) != scenario.Expect.Decision {
		return fmt.Errorf("scenario %s: decision %s, expected %s",
			scenario.Name, result.Decision, scenario.Expect.Decision)
	}

	bySource := make(map[string]negotiate.Alignment, len(result.Alignments))
	for _, a := range result.Alignments {
		bySource[a.Source.Name] = a
	}

	for _, want := range scenario.Expect.Alignments {
		got, ok := bySource[want.Source]
		if !ok {
			return fmt.Errorf("scenario %s: field %s went unmatched, expected alignment to %s",
				scenario.Name, want.Source, want.Target)
		}
		if got.Target.Name != want.Target {
			return fmt.Errorf("scenario %s: field %s aligned to %s, expected %s",
				scenario.Name, want.Source, got.Target.Name, want.Target)
		}
		if want.Rule != "" && string(got.Rule.Kind) != want.Rule {
			return fmt.Errorf("scenario %s: field %s got rule %s, expected %s",
				scenario.Name, want.Source, got.Rule.Kind, want.Rule)
		}
	}

	if len(scenario.Expect.Unmatched) > 0 {
		if len(result.Unmatched) != len(scenario.Expect.Unmatched) {
			return fmt.Errorf("scenario %s: unmatched %v, expected %v",
				scenario.Name, result.Unmatched, scenario.Expect.Unmatched)
		}
		for i, name := range scenario.Expect.Unmatched {
			if result.Unmatched[i] != name {
				return fmt.Errorf("scenario %s: unmatched %v, expected %v",
					scenario.Name, result.Unmatched, scenario.Expect.Unmatched)
			}
		}
	}

	return nil
}

// roundConfidence rounds to four decimals so snapshots are stable
// across float accumulation order.
func roundConfidence(x float64) float64 {
	return math.Round(x*10000) / 10000
}
