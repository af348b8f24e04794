package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *Schema {
	return &Schema{
		Name:    "ANPR Birth Certificate",
		Country: "IT",
		Fields: []FieldDescriptor{
			{Name: "cognome", Type: TypeString, Required: true},
			{Name: "nome", Type: TypeString, Required: true},
			{Name: "data_nascita", Type: TypeDate, Format: "DD/MM/YYYY", Required: true},
		},
	}
}

func TestValidate_ValidSchema(t *testing.T) {
	errs := validSchema().Validate()
	assert.Empty(t, errs, "valid schema should produce no errors")
}

func TestValidate_MissingSchemaName(t *testing.T) {
	s := validSchema()
	s.Name = ""

	errs := s.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidate_NoFields(t *testing.T) {
	s := &Schema{Name: "empty"}

	errs := s.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "fields", errs[0].Field)
}

func TestValidate_EmptyFieldName(t *testing.T) {
	s := validSchema()
	s.Fields = append(s.Fields, FieldDescriptor{Name: "", Type: TypeString})

	errs := s.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "fields[3].name", errs[0].Field)
}

func TestValidate_DuplicateFieldName(t *testing.T) {
	s := validSchema()
	s.Fields = append(s.Fields, FieldDescriptor{Name: "cognome", Type: TypeString})

	errs := s.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "duplicate field name")
}

func TestValidate_InvalidDataType(t *testing.T) {
	s := validSchema()
	s.Fields = append(s.Fields, FieldDescriptor{Name: "sesso", Type: DataType("char")})

	errs := s.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "fields[3].type", errs[0].Field)
	assert.Contains(t, errs[0].Message, `invalid type "char"`)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	s := &Schema{
		Fields: []FieldDescriptor{
			{Name: "", Type: TypeString},
			{Name: "a", Type: DataType("nope")},
			{Name: "a", Type: TypeString},
		},
	}

	errs := s.Validate()
	// Missing schema name, empty field name, bad type, duplicate name.
	assert.Len(t, errs, 4)
}

func TestField_Lookup(t *testing.T) {
	s := validSchema()

	f, ok := s.Field("nome")
	require.True(t, ok)
	assert.Equal(t, TypeString, f.Type)

	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestFieldNames_PreservesOrder(t *testing.T) {
	s := validSchema()
	assert.Equal(t, []string{"cognome", "nome", "data_nascita"}, s.FieldNames())
}

func TestHasEnum(t *testing.T) {
	f := FieldDescriptor{Name: "sesso", Type: TypeString, EnumValues: []string{"M", "F"}}
	assert.True(t, f.HasEnum())
	assert.False(t, FieldDescriptor{Name: "nome", Type: TypeString}.HasEnum())
}
