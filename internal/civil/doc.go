// Package civil converts between signed-year proleptic Gregorian datetimes
// and arbitrary-precision epoch milliseconds, without routing through any
// platform date type.
//
// The strict grammar is an extended ISO-8601 form with a signed, unbounded
// year field and a mandatory zone offset:
//
//	±YYYY…-MM-DDThh:mm[:ss[.fraction]](Z|±hh:mm)
//
// Fractional seconds are zero-padded to 9 digits and rounded to the nearest
// millisecond. Parsing decomposes the date through the era/year-of-era
// algorithm (January and February treated as months 13 and 14 of the prior
// year), so correctness does not depend on the host's time package and the
// valid range is not bounded by it.
//
// When the strict grammar fails, ParseEpochMs falls back to the platform
// parser (time.Parse over the RFC 3339 forms) and accepts the result only if
// it parses cleanly. That leniency path is deliberate and bounded, not a
// silent recovery.
package civil
