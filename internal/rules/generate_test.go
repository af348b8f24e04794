package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/concordlabs/concord/internal/schema"
)

func TestGenerate_DateFormat(t *testing.T) {
	source := schema.FieldDescriptor{Name: "data_nascita", Type: schema.TypeDate, Format: "DD/MM/YYYY"}
	target := schema.FieldDescriptor{Name: "geburtsdatum", Type: schema.TypeDate, Format: "ISO8601"}

	rule := Generate(source, target, 0.85)

	assert.Equal(t, DateFormat, rule.Kind)
	assert.Equal(t, "DD/MM/YYYY", rule.Params["source_format"])
	assert.Equal(t, "ISO8601", rule.Params["target_format"])
}

func TestGenerate_DateFormatDefaults(t *testing.T) {
	source := schema.FieldDescriptor{Name: "birthDate", Type: schema.TypeDate}
	target := schema.FieldDescriptor{Name: "geburtsdatum", Type: schema.TypeDate}

	rule := Generate(source, target, 0.85)

	assert.Equal(t, DateFormat, rule.Kind)
	assert.Equal(t, DefaultSourceDateFormat, rule.Params["source_format"])
	assert.Equal(t, DefaultTargetDateFormat, rule.Params["target_format"])
}

func TestGenerate_DateDetectedFromGermanName(t *testing.T) {
	// Reverse direction: "geburtsdatum" carries the "datum" token.
	source := schema.FieldDescriptor{Name: "geburtsdatum", Type: schema.TypeDate, Format: "ISO8601"}
	target := schema.FieldDescriptor{Name: "data_nascita", Type: schema.TypeDate, Format: "DD/MM/YYYY"}

	rule := Generate(source, target, 0.85)
	assert.Equal(t, DateFormat, rule.Kind)
}

func TestGenerate_EnumMap(t *testing.T) {
	source := schema.FieldDescriptor{Name: "sesso", Type: schema.TypeString, EnumValues: []string{"M", "F"}}
	target := schema.FieldDescriptor{Name: "geschlecht", Type: schema.TypeString, EnumValues: []string{"MALE", "FEMALE", "DIVERSE"}}

	rule := Generate(source, target, 0.85)

	assert.Equal(t, EnumMap, rule.Kind)
	assert.Equal(t, map[string]string{"M": "MALE", "F": "FEMALE"}, rule.Params)
}

func TestGenerate_StructureFlatten(t *testing.T) {
	source := schema.FieldDescriptor{Name: "genitori", Type: schema.TypeObject, Structure: map[string]string{"padre": "string", "madre": "string"}}
	target := schema.FieldDescriptor{Name: "eltern", Type: schema.TypeArray}

	rule := Generate(source, target, 0.85)

	assert.Equal(t, StructureFlatten, rule.Kind)
	assert.Equal(t, "empty", rule.Params["drop"])
	assert.Equal(t, "sorted_keys", rule.Params["order"])
}

func TestGenerate_DeriveFromIdentifier(t *testing.T) {
	source := schema.FieldDescriptor{Name: "codice_fiscale", Type: schema.TypeString}
	target := schema.FieldDescriptor{Name: "staatsangehoerigkeit", Type: schema.TypeString}

	rule := Generate(source, target, 0.85)

	assert.Equal(t, DeriveFromIdentifier, rule.Kind)
	assert.Equal(t, "staatsangehoerigkeit", rule.Params["derived_field"])
	assert.Equal(t, "nationality", rule.Params["derivation"])
	assert.Equal(t, "IT", rule.Params["country"])
}

func TestGenerate_DeriveFromGermanIdentifier(t *testing.T) {
	source := schema.FieldDescriptor{Name: "steuer_id", Type: schema.TypeString}
	target := schema.FieldDescriptor{Name: "cittadinanza", Type: schema.TypeString}

	rule := Generate(source, target, 0.85)

	assert.Equal(t, DeriveFromIdentifier, rule.Kind)
	assert.Equal(t, "DE", rule.Params["country"])
}

func TestGenerate_DirectMap(t *testing.T) {
	source := schema.FieldDescriptor{Name: "cognome", Type: schema.TypeString}
	target := schema.FieldDescriptor{Name: "familienname", Type: schema.TypeString}

	rule := Generate(source, target, 0.85)
	assert.Equal(t, DirectMap, rule.Kind)
}

func TestGenerate_ManualReviewBelowDirectMapMin(t *testing.T) {
	source := schema.FieldDescriptor{Name: "luogo", Type: schema.TypeString}
	target := schema.FieldDescriptor{Name: "ort", Type: schema.TypeString}

	rule := Generate(source, target, 0.7)
	assert.Equal(t, ManualReview, rule.Kind)
}

func TestGenerate_FirstMatchWins(t *testing.T) {
	// A date-named field with enum values on both sides: the date row
	// sits above the enum row in the table.
	source := schema.FieldDescriptor{Name: "data_tipo", Type: schema.TypeString, EnumValues: []string{"A"}}
	target := schema.FieldDescriptor{Name: "datumsart", Type: schema.TypeString, EnumValues: []string{"A"}}

	rule := Generate(source, target, 0.95)
	assert.Equal(t, DateFormat, rule.Kind)
}
