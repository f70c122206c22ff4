// Package bignum implements arbitrary precision integer helpers.
package bignum

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// NewInt allocates a new *big.Int set to x.
func NewInt[T constraints.Integer](x T) (y *big.Int) {
	y = new(big.Int)
	if x < 0 {
		return y.SetInt64(int64(x))
	}
	return y.SetUint64(uint64(x))
}

// LCM sets z to the least common multiple of a and b and returns z.
// The result is always non-negative, and LCM(0, b) = LCM(a, 0) = 0.
func LCM(z, a, b *big.Int) *big.Int {

	if a.Sign() == 0 || b.Sign() == 0 {
		return z.SetUint64(0)
	}

	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))

	// lcm(a, b) = |a| / gcd(a, b) * |b|
	q := new(big.Int).Quo(new(big.Int).Abs(a), gcd)
	return z.Mul(q, new(big.Int).Abs(b))
}

// LCMOf returns the least common multiple of the given values.
// LCMOf() returns 1.
func LCMOf[T constraints.Integer](values ...T) (lcm *big.Int) {
	lcm = big.NewInt(1)
	for _, v := range values {
		LCM(lcm, lcm, NewInt(v))
	}
	return
}
