package rules

import (
	"fmt"
	"sort"
	"time"
)

// Apply converts a raw value according to the rule.
//
// Apply never fails: when a value cannot be converted (unparseable date,
// unknown format name, unexpected shape) it returns the value unchanged
// together with a non-empty warning. An empty warning means the
// conversion succeeded.
func Apply(r Rule, value any) (converted any, warning string) {
	switch r.Kind {
	case DirectMap:
		return value, ""
	case DateFormat:
		return applyDateFormat(r, value)
	case EnumMap:
		return applyEnumMap(r, value)
	case StructureFlatten:
		return applyStructureFlatten(value)
	case DeriveFromIdentifier:
		return applyDerivation(r, value)
	case ManualReview:
		return value, "requires manual confirmation before use"
	default:
		return value, fmt.Sprintf("unknown transformation kind %q", r.Kind)
	}
}

func applyDateFormat(r Rule, value any) (any, string) {
	raw, ok := value.(string)
	if !ok {
		return value, fmt.Sprintf("date value is %T, expected string", value)
	}

	sourceFormat := r.Param("source_format", DefaultSourceDateFormat)
	targetFormat := r.Param("target_format", DefaultTargetDateFormat)

	sourceLayout, ok := dateLayouts[sourceFormat]
	if !ok {
		return value, fmt.Sprintf("unknown source date format %q", sourceFormat)
	}
	targetLayout, ok := dateLayouts[targetFormat]
	if !ok {
		return value, fmt.Sprintf("unknown target date format %q", targetFormat)
	}

	t, err := time.Parse(sourceLayout, raw)
	if err != nil {
		return value, fmt.Sprintf("cannot parse %q as %s", raw, sourceFormat)
	}
	return t.Format(targetLayout), ""
}

func applyEnumMap(r Rule, value any) (any, string) {
	raw, ok := value.(string)
	if !ok {
		return value, fmt.Sprintf("enum value is %T, expected string", value)
	}
	if mapped, ok := r.Params[raw]; ok {
		return mapped, ""
	}
	return value, fmt.Sprintf("no enum mapping for value %q", raw)
}

// applyStructureFlatten turns a key->value object into the sequence of its
// non-empty values. Keys are sorted for deterministic output: Go map
// iteration order would otherwise leak into the transformed record.
func applyStructureFlatten(value any) (any, string) {
	switch obj := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		flat := make([]any, 0, len(obj))
		for _, k := range keys {
			if v := obj[k]; !isEmpty(v) {
				flat = append(flat, v)
			}
		}
		return flat, ""
	case map[string]string:
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		flat := make([]any, 0, len(obj))
		for _, k := range keys {
			if obj[k] != "" {
				flat = append(flat, obj[k])
			}
		}
		return flat, ""
	default:
		return value, fmt.Sprintf("structure value is %T, expected object", value)
	}
}

func applyDerivation(r Rule, value any) (any, string) {
	country := r.Params["country"]
	if label, ok := nationalityByCountry[country]; ok {
		return label, ""
	}
	if country != "" {
		// Unknown country: fall back to the country's own label.
		return country, ""
	}
	return value, "cannot derive nationality: issuing country unknown"
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	default:
		return false
	}
}
