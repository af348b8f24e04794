package align

// SynonymTable maps a normalized field name to the set of normalized names
// it is known to correspond to. The table is symmetric: if a maps to b,
// b maps to a, so negotiating A→B and B→A yields the same field pairs.
type SynonymTable map[string]map[string]bool

// aliasGroups lists curated cross-lingual correspondence groups for civil
// registry fields. Every name in a group corresponds to every other name
// in the same group.
//
// The codice_fiscale group includes nationality fields: an Italian tax
// code derives the holder's nationality, so the cross-border mapping
// treats them as correspondents (resolved by a derive_from_identifier
// transformation rather than a direct copy).
var aliasGroups = [][]string{
	{"cognome", "familienname", "lastname", "last_name", "surname", "familyname", "family_name"},
	{"nome", "vorname", "firstname", "first_name", "givenname", "given_name"},
	{"data_nascita", "geburtsdatum", "birthdate", "birth_date", "dateofbirth", "date_of_birth"},
	{"luogo_nascita", "geburtsort", "birthplace", "birth_place", "placeofbirth", "place_of_birth"},
	{"codice_fiscale", "fiscalcode", "fiscal_code", "taxid", "tax_id", "steuer_id", "staatsangehoerigkeit", "cittadinanza", "nationality"},
	{"genitori", "eltern", "parents"},
	{"sesso", "geschlecht", "gender", "sex"},
	{"user_id", "userid", "personalid", "personal_id", "id"},
}

// DefaultSynonyms builds the symmetric table from aliasGroups.
// Keys and members are already normalized (lowercase ASCII).
func DefaultSynonyms() SynonymTable {
	table := make(SynonymTable)
	for _, group := range aliasGroups {
		for _, a := range group {
			if table[a] == nil {
				table[a] = make(map[string]bool, len(group)-1)
			}
			for _, b := range group {
				if a != b {
					table[a][b] = true
				}
			}
		}
	}
	return table
}

// Contains reports whether a and b are curated correspondents.
// Both arguments must already be normalized (see normalizeName).
func (t SynonymTable) Contains(a, b string) bool {
	return t[a][b]
}
