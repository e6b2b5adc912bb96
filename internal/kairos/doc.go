// Package kairos assembles complete responses from a single micropulse
// coordinate.
//
// The assembler has one contract worth stating in capitals: ONE COORDINATE
// IN, EVERYTHING OUT. Assemble reduces the caller's instant to one
// micropulse integer and threads that same integer through the lattice,
// the eternal indexer and the solar indexer. No field of a Response is ever
// derived from a second clock reading or a re-parsed input, which is what
// makes the fields mutually consistent by construction. Callers treat the
// returned structure as authoritative and immutable.
package kairos
