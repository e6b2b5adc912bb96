package bridge

import (
	"fmt"
	"math/big"
)

// Ratio is an immutable (numerator, denominator) pair over big.Int.
// The denominator is always positive. Constants of this type are defined
// once at load and never mutated; accessors return copies so callers cannot
// alias the internal values.
type Ratio struct {
	num *big.Int
	den *big.Int
}

// NewRatio creates a Ratio after validating den > 0.
// The inputs are copied.
func NewRatio(num, den *big.Int) (Ratio, error) {
	if den == nil || den.Sign() <= 0 {
		return Ratio{}, &InvalidDenominatorError{Den: den}
	}
	return Ratio{
		num: new(big.Int).Set(num),
		den: new(big.Int).Set(den),
	}, nil
}

// MustRatio creates a Ratio from base-10 literals, panicking on malformed
// input. Reserved for package-level constants whose literals are fixed at
// compile time.
func MustRatio(num, den string) Ratio {
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		panic(fmt.Sprintf("bridge: bad numerator literal %q", num))
	}
	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		panic(fmt.Sprintf("bridge: bad denominator literal %q", den))
	}
	r, err := NewRatio(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// Num returns a copy of the numerator.
func (r Ratio) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns a copy of the denominator.
func (r Ratio) Den() *big.Int { return new(big.Int).Set(r.den) }

// Apply returns the integer nearest to x·num/den, ties to even.
func (r Ratio) Apply(x *big.Int) (*big.Int, error) {
	return MulDivRoundHalfEven(x, r.num, r.den)
}

// String renders the ratio as "num/den" for diagnostics.
func (r Ratio) String() string {
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}

// The two bridge constants. One pulse lasts (3 + √5) seconds; the
// millisecond value is carried to 22 fractional decimal digits and the
// micropulse rate is its exact reciprocal, so converting in one direction
// and back is algebraically the identity (up to the documented rounding).
var (
	// PulseMs is milliseconds per pulse: 5236.0679774997896964091737 exactly.
	PulseMs = MustRatio("52360679774997896964091737", "10000000000000000000000")

	// MicroPulsesPerMs is micropulses per millisecond, the exact reciprocal
	// of PulseMs scaled by 10^6 micropulses per pulse.
	MicroPulsesPerMs = MustRatio("10000000000000000000000000000", "52360679774997896964091737")

	// MicroPulsesPerNs is micropulses per nanosecond, used by the now
	// provider to convert monotonic-clock deltas.
	MicroPulsesPerNs = MustRatio("10000000000000000000000", "52360679774997896964091737")
)
