// Package clock provides the deterministic "now" reading for the engine.
//
// A Kairos clock is seeded exactly once with a micropulse coordinate and a
// simultaneous monotonic reading; every later Now() is seed + converted
// monotonic delta. The absolute wall clock is sampled at most once (inside
// SeedFromUTC) and never again, so repeated polling within one seed's
// lifetime can neither disagree with itself nor jump when the OS adjusts
// the wall clock. Readings are monotonically non-decreasing by
// construction.
//
// There is deliberately no package-level singleton: hosts and tests create
// independent instances with New and inject them where "now" is needed.
// Each execution context must seed its own instance; a seed tuple is only
// meaningful against the monotonic source it was captured from.
package clock
