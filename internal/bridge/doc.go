// Package bridge provides the exact rational arithmetic underneath every
// pulse/millisecond conversion in the engine.
//
// The pulse duration is irrational ((3 + √5) seconds), so it can never be
// represented as a binary float without drift. The bridge instead carries the
// duration as an immutable (numerator, denominator) pair over big.Int and
// performs every conversion with a single multiply-divide primitive that
// rounds ties to even. Repeated conversions over millennia-scale spans
// therefore accumulate zero error.
//
// CRITICAL PATTERNS:
//
// No floats. Every quantity that feeds back into further arithmetic is an
// exact integer or rational. float64 appears only in leaf display values.
//
// Euclidean division. All div/mod on potentially negative coordinates uses
// floored semantics (DivFloor/ModFloor), never Go's truncating Quo/Rem, so
// pre-Genesis instants resolve to valid cyclic indices.
package bridge
