package pulse

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/kaiklok/kairos/internal/bridge"
	"github.com/kaiklok/kairos/internal/civil"
)

// maxSafeMs bounds numeric (float64) epoch-ms inputs to the 53-bit range in
// which they are exact.
const maxSafeMs = 1<<53 - 1

// EpochMiller is any value exposing an epoch-millisecond reading. The
// assembler and callers hand these in instead of pre-converting, so the
// reduction to micropulses happens in exactly one place.
type EpochMiller interface {
	EpochMs() *big.Int
}

// MicroPulsesSinceGenesis normalizes an instant to epoch milliseconds and
// converts it to an exact micropulse count, negative before Genesis.
//
// Accepted forms: a signed ISO datetime string (strict grammar with a
// bounded platform-parse fallback), an int/int64/float64 epoch-ms within
// the 53-bit-safe range, an arbitrary-precision *big.Int epoch-ms, a
// time.Time, or any EpochMiller.
func MicroPulsesSinceGenesis(instant any) (*big.Int, error) {
	ms, err := epochMsOf(instant)
	if err != nil {
		return nil, err
	}
	delta := new(big.Int).Sub(ms, genesisMsBig)
	return bridge.MicroPulsesPerMs.Apply(delta)
}

func epochMsOf(instant any) (*big.Int, error) {
	switch v := instant.(type) {
	case string:
		return civil.ParseEpochMs(v)
	case *big.Int:
		if v == nil {
			return nil, &civil.TimestampError{Input: "<nil>", Reason: "nil epoch-ms"}
		}
		return new(big.Int).Set(v), nil
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxSafeMs {
			return nil, &civil.TimestampError{
				Input:  fmt.Sprintf("%v", v),
				Reason: "numeric epoch-ms must be finite and 53-bit safe",
			}
		}
		return big.NewInt(int64(math.Round(v))), nil
	case time.Time:
		return big.NewInt(v.UnixMilli()), nil
	case EpochMiller:
		return new(big.Int).Set(v.EpochMs()), nil
	default:
		return nil, &civil.TimestampError{
			Input:  fmt.Sprintf("%T", instant),
			Reason: "unsupported instant representation",
		}
	}
}

// EpochMsFromPulse maps a whole-pulse index back to epoch milliseconds.
// Composed with the pulse floor of MicroPulsesSinceGenesis, the round trip
// loses at most one pulse duration (~5236 ms); that bound is inherent to
// flooring, not a defect.
func EpochMsFromPulse(pulseIndex *big.Int) *big.Int {
	ms, err := bridge.PulseMs.Apply(pulseIndex)
	if err != nil {
		// PulseMs carries a validated positive denominator.
		panic(err)
	}
	return ms.Add(ms, genesisMsBig)
}

// EpochMsFromMicroPulses maps a micropulse coordinate back to epoch
// milliseconds, rounding ties to even.
func EpochMsFromMicroPulses(mu *big.Int) *big.Int {
	ms, err := bridge.MulDivRoundHalfEven(mu, bridge.MicroPulsesPerMs.Den(), bridge.MicroPulsesPerMs.Num())
	if err != nil {
		panic(err)
	}
	return ms.Add(ms, genesisMsBig)
}
