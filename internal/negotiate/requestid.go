package negotiate

import "github.com/google/uuid"

// RequestIDGenerator generates unique negotiation request IDs.
// Implemented by UUIDv7Generator (production) and FixedIDGenerator (tests).
type RequestIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 request IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, making IDs
// sortable by creation time, which keeps the audit store's listing in
// request order without an extra column.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedIDGenerator returns the same request ID every time.
//
// This enables deterministic test execution and golden snapshot
// comparison: the same scenario with the same FixedIDGenerator produces
// byte-identical reports.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator that always returns id.
// An empty id defaults to "test-request-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-request-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed request ID.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
