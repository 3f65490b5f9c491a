// Package serialize maps between the persisted workflow record (the
// loosely-typed storage shape, accreted over several schema generations)
// and the canonical IR.
//
// ToIR and FromIR are pure functions and satisfy a round-trip law: an IR
// value built from a well-formed record survives FromIR followed by ToIR
// field-for-field, modulo default normalization of optional fields.
// Legacy fields that can hold the same logical value in more than one
// location are resolved by an explicit, ordered extractor list; first
// defined source wins. See extract.go for the documented priority order.
package serialize
