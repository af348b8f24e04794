package rules

import (
	"strings"

	"github.com/concordlabs/concord/internal/align"
	"github.com/concordlabs/concord/internal/schema"
)

// DirectMapMin is the minimum alignment score for an unconditional copy.
// It matches the exact classification band: exact-name and curated-alias
// matches map directly, everything weaker needs review.
const DirectMapMin = align.ExactBand

// Generate maps an accepted alignment to a transformation rule.
//
// Pure decision table, evaluated top-to-bottom, first match wins:
//  1. date-named source field          -> date_format
//  2. enum values on both sides       -> enum_map
//  3. object source, array target     -> structure_flatten
//  4. identity-code source name       -> derive_from_identifier
//  5. score >= DirectMapMin           -> direct_map
//  6. otherwise                       -> manual_review
func Generate(source, target schema.FieldDescriptor, score float64) Rule {
	tokens := align.Tokens(source.Name)

	switch {
	case isDateName(tokens):
		return Rule{
			Kind: DateFormat,
			Params: map[string]string{
				"source_format": formatOrDefault(source.Format, DefaultSourceDateFormat),
				"target_format": formatOrDefault(target.Format, DefaultTargetDateFormat),
			},
		}

	case source.HasEnum() && target.HasEnum():
		return Rule{
			Kind:   EnumMap,
			Params: mapEnumLabels(source.EnumValues, target.EnumValues),
		}

	case source.Type == schema.TypeObject && target.Type == schema.TypeArray:
		return Rule{
			Kind: StructureFlatten,
			Params: map[string]string{
				"drop":  "empty",
				"order": "sorted_keys",
			},
		}

	case matchesIdentifier(tokens):
		country, _ := identifierCountry(tokens)
		return Rule{
			Kind: DeriveFromIdentifier,
			Params: map[string]string{
				"derived_field": target.Name,
				"derivation":    "nationality",
				"country":       country,
			},
		}

	case score >= DirectMapMin:
		return Rule{Kind: DirectMap}

	default:
		return Rule{Kind: ManualReview}
	}
}

// isDateName reports whether a field name carries a date token in any of
// the supported languages ("data_nascita", "geburtsdatum", "birthDate").
func isDateName(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "data" || strings.Contains(tok, "date") || strings.Contains(tok, "datum") {
			return true
		}
	}
	return false
}

// matchesIdentifier reports whether a field name looks like a national
// identity code (tax code, Steuer-ID, SSN).
func matchesIdentifier(tokens []string) bool {
	_, ok := identifierCountry(tokens)
	return ok
}

func formatOrDefault(format, def string) string {
	if format == "" {
		return def
	}
	return format
}
