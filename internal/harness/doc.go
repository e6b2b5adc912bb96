// Package harness runs conformance scenarios against the assembler and
// compares their serialized output to golden files.
//
// A scenario is a YAML file listing instants; the runner assembles each
// through the one shared code path and serializes the results with a
// canonical JSON writer: keys sorted by UTF-16 code units, strings NFC
// normalized, and no floats anywhere. Percentages are emitted as
// fixed-point decimal strings computed from exact integers, so golden
// bytes are identical on every platform.
//
// Sunrise milliseconds are deliberately absent from snapshots: the solar
// approximation is float-based and its last ulp is not worth pinning.
// Solar dates and day indices are stable (scenario instants stay well away
// from sunrise boundaries) and are snapshotted instead.
package harness
