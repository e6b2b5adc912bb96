package bridge

import "math/big"

var one = big.NewInt(1)

// MulDivRoundHalfEven returns the integer nearest to x·num/den.
// Exact halfway results round to the nearest even integer, which keeps
// long chains of conversions free of cumulative bias.
//
// Fails with InvalidDenominatorError if den ≤ 0. num and x may be any sign.
func MulDivRoundHalfEven(x, num, den *big.Int) (*big.Int, error) {
	if den == nil || den.Sign() <= 0 {
		return nil, &InvalidDenominatorError{Den: den}
	}

	p := new(big.Int).Mul(x, num)

	// QuoRem truncates toward zero; rem carries the sign of p. The rounded
	// result is therefore q or q±1 away from zero, decided by comparing
	// 2·|rem| against den.
	q, rem := new(big.Int).QuoRem(p, den, new(big.Int))
	if rem.Sign() == 0 {
		return q, nil
	}

	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)

	cmp := twice.Cmp(den)
	roundAway := cmp > 0 || (cmp == 0 && q.Bit(0) == 1)
	if roundAway {
		if p.Sign() >= 0 {
			q.Add(q, one)
		} else {
			q.Sub(q, one)
		}
	}
	return q, nil
}
