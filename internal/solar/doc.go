// Package solar derives the sunrise-anchored calendar variant.
//
// Sunrise is computed with the standard low-precision solar-position
// approximation (mean anomaly → equation of center → ecliptic longitude →
// solar transit → declination → hour angle, with a fixed atmospheric
// refraction correction of −0.833°), converted to epoch milliseconds
// through Julian-day arithmetic. Accuracy is on the order of minutes;
// consumers must treat results as approximate and tests assert tolerance
// bounds, never agreement with a high-precision ephemeris.
//
// Results are memoized per calendar date in an append-only cache: an entry,
// once written, is never recomputed or overwritten. The cache is unbounded;
// long-running hosts that sweep many distinct dates own the decision to
// snapshot and reset it (the CLI persists snapshots through the store
// package).
//
// Boundary rule: an instant belongs to the solar day of its own UTC
// calendar date unless it falls before that date's sunrise, in which case
// it belongs to the previous date's solar day.
package solar
