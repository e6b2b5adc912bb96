package civil

import (
	"errors"
	"fmt"
)

// TimestampError reports input the parser could not turn into an instant:
// a string matching neither the strict grammar nor the platform fallback,
// or a field outside its valid range.
type TimestampError struct {
	// Input is the rejected text (truncated for diagnostics).
	Input string

	// Reason describes which part of the grammar or range check failed.
	Reason string
}

// Error implements the error interface.
func (e *TimestampError) Error() string {
	in := e.Input
	if len(in) > 64 {
		in = in[:64] + "…"
	}
	return fmt.Sprintf("INVALID_TIMESTAMP: %s: %q", e.Reason, in)
}

// IsInvalidTimestamp returns true if the error is a TimestampError.
// Uses errors.As to handle wrapped errors.
func IsInvalidTimestamp(err error) bool {
	var te *TimestampError
	return errors.As(err, &te)
}

func timestampErr(input, reason string) error {
	return &TimestampError{Input: input, Reason: reason}
}
