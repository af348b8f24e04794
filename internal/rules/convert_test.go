package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_DirectMap(t *testing.T) {
	got, warn := Apply(Rule{Kind: DirectMap}, "Rossi")
	assert.Empty(t, warn)
	assert.Equal(t, "Rossi", got)
}

func TestApply_DateFormat(t *testing.T) {
	rule := Rule{Kind: DateFormat, Params: map[string]string{
		"source_format": "DD/MM/YYYY",
		"target_format": "ISO8601",
	}}

	got, warn := Apply(rule, "15/03/1985")
	assert.Empty(t, warn)
	assert.Equal(t, "1985-03-15", got)
}

func TestApply_DateFormatUnparseable(t *testing.T) {
	rule := Rule{Kind: DateFormat, Params: map[string]string{
		"source_format": "DD/MM/YYYY",
		"target_format": "ISO8601",
	}}

	got, warn := Apply(rule, "not-a-date")
	assert.NotEmpty(t, warn)
	assert.Equal(t, "not-a-date", got, "unparseable dates pass through unchanged")
}

func TestApply_DateFormatWrongType(t *testing.T) {
	got, warn := Apply(Rule{Kind: DateFormat}, 19850315)
	assert.NotEmpty(t, warn)
	assert.Equal(t, 19850315, got)
}

func TestApply_DateFormatUnknownFormatName(t *testing.T) {
	rule := Rule{Kind: DateFormat, Params: map[string]string{
		"source_format": "JULIAN",
		"target_format": "ISO8601",
	}}

	got, warn := Apply(rule, "15/03/1985")
	assert.NotEmpty(t, warn)
	assert.Equal(t, "15/03/1985", got)
}

func TestApply_EnumMap(t *testing.T) {
	rule := Rule{Kind: EnumMap, Params: map[string]string{"M": "MALE", "F": "FEMALE"}}

	got, warn := Apply(rule, "M")
	assert.Empty(t, warn)
	assert.Equal(t, "MALE", got)
}

func TestApply_EnumMapUnknownValue(t *testing.T) {
	rule := Rule{Kind: EnumMap, Params: map[string]string{"M": "MALE"}}

	got, warn := Apply(rule, "X")
	assert.NotEmpty(t, warn)
	assert.Equal(t, "X", got, "unknown enum values pass through unchanged")
}

func TestApply_StructureFlatten(t *testing.T) {
	rule := Rule{Kind: StructureFlatten}

	got, warn := Apply(rule, map[string]any{
		"padre": "Giuseppe Rossi",
		"madre": "Maria Bianchi",
		"tutore": "",
	})

	assert.Empty(t, warn)
	// Keys sort as madre, padre, tutore; the empty value is dropped.
	assert.Equal(t, []any{"Maria Bianchi", "Giuseppe Rossi"}, got)
}

func TestApply_StructureFlattenDropsNil(t *testing.T) {
	got, warn := Apply(Rule{Kind: StructureFlatten}, map[string]any{
		"a": nil,
		"b": "kept",
	})

	assert.Empty(t, warn)
	assert.Equal(t, []any{"kept"}, got)
}

func TestApply_StructureFlattenStringMap(t *testing.T) {
	got, warn := Apply(Rule{Kind: StructureFlatten}, map[string]string{
		"padre": "Giuseppe Rossi",
		"madre": "Maria Bianchi",
	})

	assert.Empty(t, warn)
	assert.Equal(t, []any{"Maria Bianchi", "Giuseppe Rossi"}, got)
}

func TestApply_StructureFlattenNonObject(t *testing.T) {
	got, warn := Apply(Rule{Kind: StructureFlatten}, "scalar")
	assert.NotEmpty(t, warn)
	assert.Equal(t, "scalar", got)
}

func TestApply_DeriveFromIdentifier(t *testing.T) {
	rule := Rule{Kind: DeriveFromIdentifier, Params: map[string]string{"country": "IT"}}

	got, warn := Apply(rule, "RSSMRC85C15H501Z")
	assert.Empty(t, warn)
	assert.Equal(t, "Italian", got)
}

func TestApply_DeriveFromIdentifierUnknownCountry(t *testing.T) {
	rule := Rule{Kind: DeriveFromIdentifier, Params: map[string]string{"country": "PT"}}

	got, warn := Apply(rule, "123456789")
	assert.Empty(t, warn)
	assert.Equal(t, "PT", got, "unknown countries fall back to the country label")
}

func TestApply_DeriveFromIdentifierNoCountry(t *testing.T) {
	rule := Rule{Kind: DeriveFromIdentifier, Params: map[string]string{}}

	got, warn := Apply(rule, "123-45-6789")
	assert.NotEmpty(t, warn)
	assert.Equal(t, "123-45-6789", got)
}

func TestApply_ManualReview(t *testing.T) {
	got, warn := Apply(Rule{Kind: ManualReview}, "ambiguous")
	assert.Equal(t, "ambiguous", got)
	assert.Contains(t, warn, "manual confirmation")
}
