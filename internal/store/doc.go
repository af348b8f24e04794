// Package store persists negotiation results to SQLite for audit and
// reporting.
//
// The store is an append-only audit log: one row per negotiation plus one
// row per alignment, written in a single transaction. Writes are
// idempotent on the negotiation ID, so re-saving a result is a no-op.
// Field descriptors and rule parameters are stored as JSON so a loaded
// result can still drive record transformation.
//
// Persistence is a convenience for the CLI's report command, not a
// durability contract: the engine itself never requires a store.
package store
