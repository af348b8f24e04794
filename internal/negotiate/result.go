package negotiate

import (
	"time"

	"github.com/concordlabs/concord/internal/align"
	"github.com/concordlabs/concord/internal/rules"
	"github.com/concordlabs/concord/internal/schema"
)

// Alignment is an accepted correspondence between one source field and one
// target field. Immutable after creation; owned by its Result.
type Alignment struct {
	Source      schema.FieldDescriptor `json:"source"`
	Target      schema.FieldDescriptor `json:"target"`
	Confidence  float64                `json:"confidence"`
	Type        align.AlignmentType    `json:"alignment_type"`
	Basis       align.Basis            `json:"basis"`
	Explanation string                 `json:"explanation,omitempty"`
	Rule        rules.Rule             `json:"transformation"`
}

// Decision is the aggregate outcome of a negotiation.
type Decision string

const (
	// DecisionApproved means the overall confidence cleared the threshold
	// and the transformation can be applied automatically.
	DecisionApproved Decision = "approved"
	// DecisionNeedsReview means a human must confirm the alignment set
	// before records are transformed.
	DecisionNeedsReview Decision = "needs_review"
)

// Result is the outcome of one negotiation call. Created once, returned
// to the caller, never mutated afterward.
type Result struct {
	// ID correlates the negotiation across logs, storage, and reports.
	ID string `json:"id"`

	SourceSchema string `json:"source_schema"`
	TargetSchema string `json:"target_schema"`

	// Alignments in source field declaration order.
	Alignments []Alignment `json:"alignments"`

	// Unmatched lists source fields whose best candidate stayed below
	// the minimum floor, in declaration order. Recorded as data, never
	// raised as an error: a negotiation always completes.
	Unmatched []string `json:"unmatched_source_fields,omitempty"`

	// OverallConfidence is the arithmetic mean of alignment confidences,
	// 0 when no field aligned.
	OverallConfidence float64 `json:"overall_confidence"`

	Decision   Decision   `json:"decision"`
	Compliance Compliance `json:"compliance"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Aligned reports whether the source field with the given name produced
// an alignment.
func (r *Result) Aligned(sourceField string) bool {
	for _, a := range r.Alignments {
		if a.Source.Name == sourceField {
			return true
		}
	}
	return false
}
