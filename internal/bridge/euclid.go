package bridge

import "math/big"

// DivFloor returns ⌊a/b⌋ for b > 0. Unlike Quo, the result is floored, so
// negative coordinates divide toward negative infinity: DivFloor(-1, 6) = -1.
// Panics if b ≤ 0; callers only pass the fixed positive lattice constants.
func DivFloor(a, b *big.Int) *big.Int {
	if b == nil || b.Sign() <= 0 {
		panic((&InvalidDenominatorError{Den: b}).Error())
	}
	// big.Int.Div is Euclidean, which coincides with floored division for
	// positive divisors.
	return new(big.Int).Div(a, b)
}

// ModFloor returns a mod b in [0, b) for b > 0, Euclidean semantics:
// ModFloor(-1, 6) = 5. Panics if b ≤ 0.
func ModFloor(a, b *big.Int) *big.Int {
	if b == nil || b.Sign() <= 0 {
		panic((&InvalidDenominatorError{Den: b}).Error())
	}
	return new(big.Int).Mod(a, b)
}

// ClampInt64 projects x onto the int64 range. Values outside the range clamp
// to the nearest bound; the loss is documented at call sites that surface
// fixed-width views of arbitrary-precision coordinates.
func ClampInt64(x *big.Int) int64 {
	if x.IsInt64() {
		return x.Int64()
	}
	if x.Sign() > 0 {
		return 1<<63 - 1
	}
	return -1 << 63
}
