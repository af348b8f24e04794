// Package align computes field-to-field similarity and selects the best
// alignment candidate for each source field.
//
// The scorer is a deterministic four-rung ladder (exact name, curated
// cross-lingual alias, token overlap, type compatibility) with no
// randomness: the same schema pair always produces the same scores.
// A production semantic-matching backend can replace it through the
// negotiate.ExternalAligner interface; this package is also the fallback
// when that backend fails.
//
// Scoring and selection are separate steps on purpose: the scorer emits
// one CandidateMatch per target (order preserved), and the selector picks
// the winner under a minimum-floor rejection policy. Ties at identical
// score resolve to the earlier target in declaration order.
package align
