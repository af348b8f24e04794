package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concordlabs/concord/internal/schema"
	"github.com/concordlabs/concord/internal/testutil"
)

func TestLoadSchema_CUE(t *testing.T) {
	s, err := LoadSchema("testdata/italian.cue")
	require.NoError(t, err)

	assert.Equal(t, "ANPR Birth Certificate", s.Name)
	assert.Equal(t, "IT", s.Country)
	require.Len(t, s.Fields, 7)

	assert.Equal(t, "cognome", s.Fields[0].Name)
	assert.Equal(t, schema.TypeString, s.Fields[0].Type)
	assert.True(t, s.Fields[0].Required)

	date, ok := s.Field("data_nascita")
	require.True(t, ok)
	assert.Equal(t, schema.TypeDate, date.Type)
	assert.Equal(t, "DD/MM/YYYY", date.Format)

	parents, ok := s.Field("genitori")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"padre": "string", "madre": "string"}, parents.Structure)

	gender, ok := s.Field("sesso")
	require.True(t, ok)
	assert.Equal(t, []string{"M", "F"}, gender.EnumValues)
}

func TestLoadSchema_YAML(t *testing.T) {
	s, err := LoadSchema("testdata/german.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Civil Registry Birth Verification", s.Name)
	assert.Equal(t, "DE", s.Country)
	require.Len(t, s.Fields, 7)
	assert.Empty(t, s.Validate())

	gender, ok := s.Field("geschlecht")
	require.True(t, ok)
	assert.Equal(t, []string{"MALE", "FEMALE", "DIVERSE"}, gender.EnumValues)
}

func TestLoadSchema_YAMLMatchesFixture(t *testing.T) {
	s, err := LoadSchema("testdata/german.yaml")
	require.NoError(t, err)
	assert.Equal(t, testutil.GermanBirthCertificate(), s)
}

func TestLoadSchema_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	payload := `{"name":"Minimal","fields":[{"name":"surname","type":"string"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	s, err := LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "Minimal", s.Name)
	require.Len(t, s.Fields, 1)
	assert.Equal(t, "surname", s.Fields[0].Name)
}

func TestLoadSchema_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"x\""), 0o644))

	_, err := LoadSchema(path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadSchema_MissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadSchema_BadCUE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.cue")
	require.NoError(t, os.WriteFile(path, []byte("schema: name: 3 & \"x\"\n"), 0o644))

	_, err := LoadSchema(path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadRecord(t *testing.T) {
	record, err := LoadRecord("testdata/record.json")
	require.NoError(t, err)
	assert.Equal(t, "Rossi", record["cognome"])
	assert.Equal(t, "15/03/1985", record["data_nascita"])
}
