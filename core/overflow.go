package core

import "math/big"

// mulDiv computes floor(a*b/c) using a 256-bit-wide intermediate so the
// multiplication cannot silently wrap the way it would at native uint64
// width. Every swap/deposit/withdrawal ratio in this package (Q·Δb/(B+Δb),
// L·Δb/B, B·ℓ/L, ...) multiplies two balance-typed values before dividing,
// and real pools at 10^18 scale overflow uint64 well before the division.
// A zero c is reported as ErrOverflow rather than panicking; the swap and
// liquidity extrinsics only pass divisors already checked positive, while
// QuoteBuy/QuoteSell pass reserve+amount unchecked, which is zero for an
// empty pool and a zero amount.
func mulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrOverflow
	}
	prod := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	q := new(big.Int).Div(prod, new(big.Int).SetUint64(c))
	if !q.IsUint64() {
		return 0, ErrOverflow
	}
	return q.Uint64(), nil
}

// addChecked returns a+b, failing with ErrOverflow instead of wrapping.
func addChecked(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}
