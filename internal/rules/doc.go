// Package rules generates typed transformation rules for accepted field
// alignments and applies them to concrete record values.
//
// Rule generation is a pure decision table evaluated top-to-bottom with
// first match winning; a Rule carries no behavior, only a kind and string
// parameters that Apply consumes later. Country-specific behavior (date
// formats, enum label mappings, nationality derivation) lives in data
// tables so a new country pair is configuration, not code.
//
// Apply never returns an error: a value that cannot be converted passes
// through unchanged with a recorded warning, per the contract that record
// transformation always completes.
package rules
