package rules

// Kind identifies a transformation rule type.
type Kind string

// Transformation rule kinds.
const (
	// DirectMap copies the source value unchanged.
	DirectMap Kind = "direct_map"
	// DateFormat re-renders a date string from the source format
	// to the target format.
	DateFormat Kind = "date_format"
	// EnumMap translates enumerated labels (e.g., "M" -> "MALE").
	EnumMap Kind = "enum_map"
	// StructureFlatten converts a key->value object into the ordered
	// sequence of its non-empty values.
	StructureFlatten Kind = "structure_flatten"
	// DeriveFromIdentifier derives the target value from a national
	// identity code (e.g., Italian tax code implies Italian nationality).
	DeriveFromIdentifier Kind = "derive_from_identifier"
	// ManualReview copies the value but flags the field for human
	// confirmation before use.
	ManualReview Kind = "manual_review"
)

// Rule is a pure transformation descriptor: a kind plus the parameters
// the converter consumes. Rules carry no behavior state.
type Rule struct {
	Kind   Kind              `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Param returns the named parameter, or def when absent.
func (r Rule) Param(key, def string) string {
	if v, ok := r.Params[key]; ok {
		return v
	}
	return def
}
