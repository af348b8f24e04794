package schema

// DataType classifies a field's value space.
type DataType string

// Allowed data types for schema fields.
const (
	TypeString  DataType = "string"
	TypeDate    DataType = "date"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeObject  DataType = "object"
	TypeArray   DataType = "array"
)

// ValidDataTypes defines the allowed type strings for field descriptors.
var ValidDataTypes = map[DataType]bool{
	TypeString:  true,
	TypeDate:    true,
	TypeNumber:  true,
	TypeBoolean: true,
	TypeObject:  true,
	TypeArray:   true,
}

// FieldDescriptor is the normalized representation of one schema field.
//
// Descriptors are immutable after construction. EnumValues and Structure
// are optional; Format carries declared date-format metadata such as
// "DD/MM/YYYY" or "ISO8601" and is only meaningful for date fields.
type FieldDescriptor struct {
	Name        string            `json:"name" yaml:"name"`
	Type        DataType          `json:"type" yaml:"type"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	EnumValues  []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Structure   map[string]string `json:"structure,omitempty" yaml:"structure,omitempty"`
}

// HasEnum reports whether the field declares an enumerated value set.
func (f FieldDescriptor) HasEnum() bool {
	return len(f.EnumValues) > 0
}

// Schema is an ordered collection of field descriptors for one record format.
//
// Field order NEVER changes after construction: the negotiator's output is
// merged back into this order, and the scorer's tie-break prefers earlier
// target fields.
type Schema struct {
	// Name identifies the record format (e.g., "ANPR Birth Certificate").
	Name string `json:"name" yaml:"name"`

	// Country is the ISO 3166-1 alpha-2 code of the issuing country.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// Fields in declaration order.
	Fields []FieldDescriptor `json:"fields" yaml:"fields"`
}

// Field returns the descriptor with the given name, if present.
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}
