// Package pulse reduces instants to a single micropulse coordinate and
// derives every fixed-cadence quantity from it.
//
// ARCHITECTURE:
//
// One-way data flow. An instant (string, epoch-ms number, big.Int, time.Time
// or anything exposing EpochMs) enters through MicroPulsesSinceGenesis and
// becomes one arbitrary-precision micropulse count. Beat, step, weekday,
// eternal calendar indices are all pure functions of that one integer and
// are never re-derived from a second reading, which is what keeps every
// field of a moment mutually consistent.
//
// Geometry: 36 beats per day, 44 steps per beat, 11 pulses per step,
// 6-day week, 42-day month (7 named weeks), 336-day year (8 months).
//
// Two day lengths exist on purpose. DayMicro is the exact harmonic day and
// drives day/weekday indexing; the lattice decomposition runs on a truncated
// grid (GridDayMicro) whose beat and step boundaries land on whole
// micropulses. See the constants for the exact relationship.
package pulse
