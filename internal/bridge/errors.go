package bridge

import (
	"errors"
	"fmt"
	"math/big"
)

// InvalidDenominatorError reports a non-positive denominator reaching the
// rounding primitive. This is an internal precondition violation: the two
// pulse constants are validated at load, so a caller seeing this error has
// found a defect, not bad input.
type InvalidDenominatorError struct {
	// Den is the offending denominator (nil if absent).
	Den *big.Int
}

// Error implements the error interface.
func (e *InvalidDenominatorError) Error() string {
	if e.Den == nil {
		return "INVALID_DENOMINATOR: denominator is nil"
	}
	return fmt.Sprintf("INVALID_DENOMINATOR: denominator must be positive, got %s", e.Den.String())
}

// IsInvalidDenominator returns true if the error is an InvalidDenominatorError.
// Uses errors.As to handle wrapped errors.
func IsInvalidDenominator(err error) bool {
	var de *InvalidDenominatorError
	return errors.As(err, &de)
}
