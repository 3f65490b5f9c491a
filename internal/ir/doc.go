// Package ir defines the canonical intermediate representation for a
// workflow graph: nodes, connections, metadata, activity options, and
// retry policy.
//
// The IR is a value, not a managed resource. It is built fresh from the
// persisted record on every export, consumed by the validator and the
// code generators, and discarded when export returns. Nothing in this
// package performs I/O or holds mutable state.
//
// Parameter trees are represented by the sealed Value interface
// (Null, Bool, Int, Float, String, Array, Object), which covers exactly
// the JSON-representable values. Canonical serialization (sorted keys,
// NFC-normalized strings, no HTML escaping) backs the export digest used
// to verify that regenerating an export is a no-op.
package ir
