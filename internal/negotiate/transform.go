package negotiate

import "github.com/concordlabs/concord/internal/rules"

// Warning records a value-conversion problem for one field. Warnings are
// returned alongside the transformed record instead of failing it: a bad
// date or an unknown enum label degrades to identity pass-through.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Transform converts a source-shaped record into a target-shaped record
// using an established negotiation result.
//
// Each alignment's transformation rule is applied to the corresponding
// source value. Source fields absent from the record are skipped; target
// fields with no alignment stay absent from the output. Transform never
// fails: conversion problems surface as warnings.
func Transform(result *Result, record map[string]any) (map[string]any, []Warning) {
	out := make(map[string]any, len(result.Alignments))
	var warnings []Warning

	for _, a := range result.Alignments {
		value, present := record[a.Source.Name]
		if !present {
			continue
		}

		converted, warn := rules.Apply(a.Rule, value)
		out[a.Target.Name] = converted
		if warn != "" {
			warnings = append(warnings, Warning{Field: a.Source.Name, Message: warn})
		}
	}

	return out, warnings
}
