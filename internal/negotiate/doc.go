// Package negotiate implements the negotiation orchestrator: the single
// entry point collaborators use to align two schemas and transform records
// between them.
//
// ARCHITECTURE:
//
// Per-field independence:
// Each source field's evaluation (score -> select -> generate rule) reads
// only its own descriptor and the read-only target field list and writes
// only to its own output slot. The orchestrator fans evaluations out
// across goroutines and merges the slots back into source declaration
// order, so the result is identical regardless of execution interleaving.
//
// Determinism:
// No randomness anywhere in the pipeline. The same schema pair with the
// same configuration always produces the same alignments, the same
// overall confidence, and the same decision. Only the request ID varies,
// and tests pin it with a fixed generator.
//
// External backends:
// A production semantic-matching service plugs in through the
// ExternalAligner interface. When it fails or times out, the orchestrator
// logs the failure and falls back to the deterministic scorer, so a
// negotiation always completes.
//
// Cancellation:
// Negotiate honors context cancellation between field evaluations. A
// cancelled negotiation returns ctx.Err() and discards all partial work;
// callers never observe a half-built result.
package negotiate
