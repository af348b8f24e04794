package negotiate

// Confidence bands for report summaries.
const (
	highConfidenceMin   = 0.8
	mediumConfidenceMin = 0.6
)

// Report is the per-request negotiation summary rendered by the CLI and
// persisted to the audit store.
type Report struct {
	RequestID         string      `json:"request_id"`
	SourceSchema      string      `json:"source_schema"`
	TargetSchema      string      `json:"target_schema"`
	Decision          Decision    `json:"decision"`
	OverallConfidence float64     `json:"overall_confidence"`
	TotalAlignments   int         `json:"total_alignments"`
	HighConfidence    int         `json:"high_confidence_count"`
	MediumConfidence  int         `json:"medium_confidence_count"`
	LowConfidence     int         `json:"low_confidence_count"`
	Unmatched         []string    `json:"unmatched_source_fields,omitempty"`
	Alignments        []Alignment `json:"detailed_alignments"`
	Compliance        Compliance  `json:"compliance"`
}

// Report summarizes the result with confidence-band counts
// (high >= 0.8, medium 0.6-0.8, low < 0.6).
func (r *Result) Report() Report {
	rep := Report{
		RequestID:         r.ID,
		SourceSchema:      r.SourceSchema,
		TargetSchema:      r.TargetSchema,
		Decision:          r.Decision,
		OverallConfidence: r.OverallConfidence,
		TotalAlignments:   len(r.Alignments),
		Unmatched:         r.Unmatched,
		Alignments:        r.Alignments,
		Compliance:        r.Compliance,
	}

	for _, a := range r.Alignments {
		switch {
		case a.Confidence >= highConfidenceMin:
			rep.HighConfidence++
		case a.Confidence >= mediumConfidenceMin:
			rep.MediumConfidence++
		default:
			rep.LowConfidence++
		}
	}

	return rep
}
