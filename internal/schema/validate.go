package schema

import "fmt"

// ValidationError represents a validation error with field path and message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the schema against structural rules.
// Returns all errors (not fail-fast) for better developer experience.
//
// Rules:
//   - schema name must be non-empty
//   - at least one field is required
//   - every field needs a non-empty name and a known data type
//   - field names must be unique within the schema
func (s *Schema) Validate() []ValidationError {
	var errs []ValidationError

	if s.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "schema name is required",
		})
	}

	if len(s.Fields) == 0 {
		errs = append(errs, ValidationError{
			Field:   "fields",
			Message: "at least one field is required",
		})
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("fields[%d].name", i),
				Message: "field name is required",
			})
			continue
		}
		if seen[f.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("fields[%d].name", i),
				Message: fmt.Sprintf("duplicate field name: %q", f.Name),
			})
		}
		seen[f.Name] = true

		if !ValidDataTypes[f.Type] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("fields[%d].type", i),
				Message: fmt.Sprintf("invalid type %q for field %q, must be one of: string, date, number, boolean, object, array", f.Type, f.Name),
			})
		}
	}

	return errs
}
