package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/concordlabs/concord/internal/schema"
)

// LoadSchema reads a schema definition from a CUE, YAML, or JSON file.
// The format is chosen by file extension.
func LoadSchema(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read schema file", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return loadCUE(path, data)
	case ".yaml", ".yml":
		return loadYAML(path, data)
	case ".json":
		return loadJSON(path, data)
	default:
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("unsupported schema format %q (want .cue, .yaml, or .json)", filepath.Ext(path)))
	}
}

// loadCUE compiles the file and decodes its top-level "schema" value.
// CUE definitions can constrain fields (enum values, formats) beyond
// what plain YAML or JSON express, so it is the preferred format for
// authoritative national schemas.
func loadCUE(path string, data []byte) (*schema.Schema, error) {
	ctx := cuecontext.New()

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, WrapExitError(ExitCommandError, "compile CUE schema", err)
	}

	schemaValue := value.LookupPath(cue.ParsePath("schema"))
	if !schemaValue.Exists() {
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("%s: no top-level \"schema\" value", path))
	}

	var s schema.Schema
	if err := schemaValue.Decode(&s); err != nil {
		return nil, WrapExitError(ExitCommandError, "decode CUE schema", err)
	}
	return &s, nil
}

func loadYAML(path string, data []byte) (*schema.Schema, error) {
	var s schema.Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
	}
	return &s, nil
}

func loadJSON(path string, data []byte) (*schema.Schema, error) {
	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
	}
	return &s, nil
}

// LoadRecord reads a JSON record to be transformed.
func LoadRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read record file", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parse %s", path), err)
	}
	return record, nil
}
