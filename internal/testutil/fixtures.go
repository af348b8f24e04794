// Package testutil provides shared schema fixtures for tests: the Italian
// ANPR and German civil-registry birth-certificate formats the engine was
// originally built around, plus a sample record.
package testutil

import "github.com/concordlabs/concord/internal/schema"

// ItalianBirthCertificate returns the ANPR birth certificate schema.
// Callers get a fresh copy and may mutate it freely.
func ItalianBirthCertificate() *schema.Schema {
	return &schema.Schema{
		Name:    "ANPR Birth Certificate",
		Country: "IT",
		Fields: []schema.FieldDescriptor{
			{Name: "cognome", Type: schema.TypeString, Description: "Family name as registered in Italian civil records", Required: true},
			{Name: "nome", Type: schema.TypeString, Description: "Given name(s) as registered in Italian civil records", Required: true},
			{Name: "data_nascita", Type: schema.TypeDate, Description: "Date of birth in Italian format", Format: "DD/MM/YYYY", Required: true},
			{Name: "luogo_nascita", Type: schema.TypeString, Description: "Place of birth - municipality name", Required: true},
			{Name: "codice_fiscale", Type: schema.TypeString, Description: "Italian tax identification code", Required: true},
			{Name: "genitori", Type: schema.TypeObject, Description: "Parent information as object with padre/madre keys", Structure: map[string]string{"padre": "string", "madre": "string"}},
			{Name: "sesso", Type: schema.TypeString, Description: "Gender designation", EnumValues: []string{"M", "F"}},
		},
	}
}

// GermanBirthCertificate returns the civil-registry verification schema.
// Callers get a fresh copy and may mutate it freely.
func GermanBirthCertificate() *schema.Schema {
	return &schema.Schema{
		Name:    "Civil Registry Birth Verification",
		Country: "DE",
		Fields: []schema.FieldDescriptor{
			{Name: "familienname", Type: schema.TypeString, Description: "Family name according to German civil registration", Required: true},
			{Name: "vorname", Type: schema.TypeString, Description: "Given name(s) according to German civil registration", Required: true},
			{Name: "geburtsdatum", Type: schema.TypeDate, Description: "Date of birth in ISO 8601 format", Format: "ISO8601", Required: true},
			{Name: "geburtsort", Type: schema.TypeString, Description: "Place of birth according to German standards", Required: true},
			{Name: "staatsangehoerigkeit", Type: schema.TypeString, Description: "Nationality according to German law", Required: true},
			{Name: "eltern", Type: schema.TypeArray, Description: "Parent information as array of names", Required: true},
			{Name: "geschlecht", Type: schema.TypeString, Description: "Gender according to German civil law", EnumValues: []string{"MALE", "FEMALE", "DIVERSE"}, Required: true},
		},
	}
}

// ItalianBirthRecord returns a sample ANPR record matching
// ItalianBirthCertificate.
func ItalianBirthRecord() map[string]any {
	return map[string]any{
		"cognome":        "Rossi",
		"nome":           "Marco",
		"data_nascita":   "15/03/1985",
		"luogo_nascita":  "Roma",
		"codice_fiscale": "RSSMRC85C15H501Z",
		"genitori":       map[string]any{"padre": "Giuseppe Rossi", "madre": "Maria Bianchi"},
		"sesso":          "M",
	}
}
