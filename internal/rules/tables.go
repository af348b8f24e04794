package rules

import "strings"

// Default date formats when a descriptor declares none.
const (
	DefaultSourceDateFormat = "DD/MM/YYYY"
	DefaultTargetDateFormat = "ISO8601"
)

// dateLayouts maps declared format names to Go time layouts.
var dateLayouts = map[string]string{
	"DD/MM/YYYY": "02/01/2006",
	"MM/DD/YYYY": "01/02/2006",
	"DD.MM.YYYY": "02.01.2006",
	"YYYY-MM-DD": "2006-01-02",
	"ISO8601":    "2006-01-02",
}

// identifierCountries maps identity-code name tokens to the issuing
// country. Evaluated in order so more specific tokens win.
var identifierCountries = []struct {
	Token   string
	Country string
}{
	{"fiscale", "IT"},   // codice_fiscale
	{"fiscal", "IT"},    // fiscal_code, fiscalCode
	{"steuer", "DE"},    // Steuer-ID
	{"insee", "FR"},     // numéro INSEE
	{"nie", "ES"},       // número de identidad de extranjero
	{"tax", ""},         // generic tax identifier, country unknown
	{"ssn", ""},         // generic social security number
}

// nationalityByCountry holds the nationality label a national identity
// code implies. Unknown countries fall back to the country label itself.
var nationalityByCountry = map[string]string{
	"IT": "Italian",
	"DE": "German",
	"FR": "French",
	"ES": "Spanish",
}

// identifierCountry returns the issuing country for an identity-code
// field name, and whether the name matches an identity-code pattern
// at all.
func identifierCountry(tokens []string) (string, bool) {
	for _, entry := range identifierCountries {
		for _, tok := range tokens {
			if tok == entry.Token {
				return entry.Country, true
			}
		}
	}
	return "", false
}

// mapEnumLabels builds a best-effort source-to-target label mapping by
// lexical similarity. Exact (case-insensitive) matches win over prefix
// matches; ties resolve to the earlier target label. Source labels with
// no lexical relation to any target label are left unmapped and pass
// through unchanged at conversion time.
func mapEnumLabels(source, target []string) map[string]string {
	mapping := make(map[string]string, len(source))
	for _, s := range source {
		best := ""
		bestRank := 0
		for _, t := range target {
			rank := labelRank(s, t)
			if rank > bestRank {
				best = t
				bestRank = rank
			}
		}
		if bestRank > 0 {
			mapping[s] = best
		}
	}
	return mapping
}

// labelRank scores the lexical relation between two enum labels:
// 2 for a case-insensitive exact match, 1 for a prefix relation in
// either direction, 0 for none.
func labelRank(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	switch {
	case la == lb:
		return 2
	case strings.HasPrefix(lb, la) || strings.HasPrefix(la, lb):
		return 1
	default:
		return 0
	}
}
