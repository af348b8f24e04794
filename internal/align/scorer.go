package align

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/concordlabs/concord/internal/schema"
)

// Scorer computes pairwise similarity between a source field and candidate
// target fields using the deterministic ladder described in the package doc.
//
// Thread-safety: Scorer is immutable after construction and safe for
// concurrent use; the negotiator fans field evaluations out across
// goroutines against a single shared Scorer.
type Scorer struct {
	synonyms SynonymTable
}

// NewScorer creates a scorer with the default cross-lingual alias table.
func NewScorer() *Scorer {
	return &Scorer{synonyms: DefaultSynonyms()}
}

// NewScorerWithSynonyms creates a scorer with a custom alias table.
// The table must be symmetric for round-trip negotiations to agree.
func NewScorerWithSynonyms(table SynonymTable) *Scorer {
	return &Scorer{synonyms: table}
}

// Score computes one CandidateMatch per target field, in target order.
//
// The ladder, strongest rung first:
//  1. case-insensitive exact name match         -> 0.95, exact_name
//  2. curated cross-lingual alias               -> 0.85, semantic_synonym
//  3. token-set overlap (intersection-over-union,
//     scaled into [0.6, 0.8])                   -> partial_token
//  4. matching data type                        -> 0.3, type_only
//  5. otherwise                                 -> 0.0, none
//
// The first rung that fires wins; a target never gets two scores.
func (s *Scorer) Score(source schema.FieldDescriptor, targets []schema.FieldDescriptor) []CandidateMatch {
	srcName := normalizeName(source.Name)
	srcTokens := Tokens(source.Name)

	matches := make([]CandidateMatch, len(targets))
	for i, target := range targets {
		matches[i] = s.scoreOne(source, srcName, srcTokens, target)
	}
	return matches
}

func (s *Scorer) scoreOne(source schema.FieldDescriptor, srcName string, srcTokens []string, target schema.FieldDescriptor) CandidateMatch {
	tgtName := normalizeName(target.Name)

	if srcName == tgtName {
		return CandidateMatch{
			Target:      target,
			Score:       ScoreExactName,
			Basis:       BasisExactName,
			Explanation: fmt.Sprintf("exact field name match between %q and %q", source.Name, target.Name),
		}
	}

	if s.synonyms.Contains(srcName, tgtName) {
		return CandidateMatch{
			Target:      target,
			Score:       ScoreSynonym,
			Basis:       BasisSynonym,
			Explanation: fmt.Sprintf("%q commonly maps to %q in cross-border contexts", source.Name, target.Name),
		}
	}

	if iou := tokenOverlap(srcTokens, Tokens(target.Name)); iou > 0 {
		return CandidateMatch{
			Target:      target,
			Score:       PartialTokenBase + PartialTokenSpan*iou,
			Basis:       BasisPartialToken,
			Explanation: fmt.Sprintf("partial token overlap between %q and %q", source.Name, target.Name),
		}
	}

	if source.Type == target.Type {
		return CandidateMatch{
			Target:      target,
			Score:       ScoreTypeOnly,
			Basis:       BasisTypeOnly,
			Explanation: fmt.Sprintf("same data type (%s) suggests potential compatibility", source.Type),
		}
	}

	return CandidateMatch{Target: target, Basis: BasisNone}
}

// foldDiacritics strips combining marks so "città" and "citta" compare equal.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName lowercases a field name and folds diacritics.
func normalizeName(name string) string {
	folded, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw name.
		folded = name
	}
	return strings.ToLower(folded)
}

// Tokens splits a normalized name on non-alphanumeric runes.
// Shared with the rule generator, which keys its decision table on
// name tokens.
func Tokens(name string) []string {
	return strings.FieldsFunc(normalizeName(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// tokenOverlap returns the intersection-over-union of two token sets.
// Returns 0 when either set is empty or the sets are disjoint.
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]bool, len(a))
	for _, tok := range a {
		set[tok] = true
	}

	union := len(set)
	intersection := 0
	seen := make(map[string]bool, len(b))
	for _, tok := range b {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if set[tok] {
			intersection++
		} else {
			union++
		}
	}

	if intersection == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
