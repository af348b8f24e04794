package align

import "github.com/concordlabs/concord/internal/schema"

// Basis identifies which scoring rung produced a candidate match.
type Basis string

// Scoring bases, strongest first.
const (
	// BasisExactName is a case-insensitive exact field-name match.
	BasisExactName Basis = "exact_name"
	// BasisSynonym is a hit in the curated cross-lingual alias table.
	BasisSynonym Basis = "semantic_synonym"
	// BasisPartialToken is a non-empty name-token intersection.
	BasisPartialToken Basis = "partial_token"
	// BasisTypeOnly means only the data types agree.
	BasisTypeOnly Basis = "type_only"
	// BasisNone means no signal at all; the selector never picks these.
	BasisNone Basis = "none"
)

// Scores assigned by each rung of the ladder.
const (
	ScoreExactName = 0.95
	ScoreSynonym   = 0.85
	ScoreTypeOnly  = 0.3

	// Partial-token scores span [PartialTokenBase, PartialTokenBase+PartialTokenSpan],
	// proportional to the intersection-over-union of the two token sets.
	PartialTokenBase = 0.6
	PartialTokenSpan = 0.2
)

// CandidateMatch scores one target field against a source field.
// Candidates are ephemeral: produced by the scorer, consumed immediately
// by the selector, never retained beyond a negotiation request.
type CandidateMatch struct {
	Target      schema.FieldDescriptor
	Score       float64 // in [0,1]
	Basis       Basis
	Explanation string
}

// AlignmentType classifies how strong an accepted alignment is.
type AlignmentType string

const (
	AlignExact      AlignmentType = "exact"
	AlignRelated    AlignmentType = "related"
	AlignUnresolved AlignmentType = "unresolved"
)

// Classification bands. Curated alias matches (0.85) classify as exact
// alongside exact-name matches: the table only holds pairs known to be
// semantically equivalent, so "cognome"→"familienname" is exact even
// though its score sits below an exact-name hit.
const (
	ExactBand   = 0.85
	RelatedBand = 0.6
)

// ClassifyScore maps a winning candidate's score to an alignment type.
func ClassifyScore(score float64) AlignmentType {
	switch {
	case score >= ExactBand:
		return AlignExact
	case score >= RelatedBand:
		return AlignRelated
	default:
		return AlignUnresolved
	}
}
