// Package schema defines the normalized field-descriptor data model that
// every other Concord component consumes.
//
// A Schema is an ordered sequence of FieldDescriptors, one per field of a
// national record format (e.g., the Italian ANPR birth certificate or the
// German civil-registry verification schema). Descriptors are plain values
// and are treated as immutable once constructed: the scorer, selector, and
// rule generator only ever read them.
//
// Validation is collect-all rather than fail-fast: Schema.Validate returns
// every structural problem (empty names, unknown data types, duplicate
// field names) so callers can report them all at once.
package schema
