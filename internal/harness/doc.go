// Package harness provides a conformance testing framework for the
// negotiation engine.
//
// Scenarios are YAML files pairing two schema definitions with the
// expected negotiation outcome: the decision, the alignment matrix, and
// optionally a record to convert. Execution is fully deterministic (a
// fixed request ID, no wall-clock fields in snapshots, confidences
// rounded to four decimals), so snapshots can be compared byte for byte
// against golden files.
package harness
