// Package num implements various utility functions regarding numeric types.
package num

import (
	"math/big"
)

// InverseModWord returns x^-1 mod 2^64.
// Panics if x is even.
func InverseModWord(x uint64) uint64 {
	if x&1 == 0 {
		panic("modular inverse does not exist")
	}

	// x is its own inverse modulo 8, so the seed has three correct bits.
	// Each step doubles them: 3, 6, 12, 24, 48, 96.
	y := x
	for i := 0; i < 5; i++ {
		y *= 2 - x*y
	}
	return y
}

// BigInverseModPow2 returns x^-1 mod 2^k.
// Output is always in [0, 2^k).
// Panics if x is even.
func BigInverseModPow2(x *big.Int, k uint) *big.Int {
	if x.Bit(0) == 0 {
		panic("modular inverse does not exist")
	}

	if k == 0 {
		return big.NewInt(0)
	}

	mask := big.NewInt(0).Lsh(big.NewInt(1), k)
	mask.Sub(mask, big.NewInt(1))

	xLo := big.NewInt(0).And(x, new(big.Int).SetUint64(^uint64(0)))
	y := big.NewInt(0).SetUint64(InverseModWord(xLo.Uint64()))

	xk := big.NewInt(0).And(x, mask)
	two := big.NewInt(2)
	tmp := big.NewInt(0)
	for prec := uint(64); prec < k; prec <<= 1 {
		tmp.Mul(xk, y)
		tmp.Sub(two, tmp)
		y.Mul(y, tmp)
		y.And(y, mask)
	}

	return y.And(y, mask)
}

// IsPowerOfTwo reports whether m = 2^k for some k >= 0.
func IsPowerOfTwo(m *big.Int) bool {
	return m.Sign() > 0 && m.TrailingZeroBits() == uint(m.BitLen()-1)
}

// BigModInverse returns the modular inverse of a modulo m.
// Power-of-two moduli are handled by Hensel lifting,
// everything else by [big.Int.ModInverse].
// Output is always in [0, m).
// Panics if a and m are not coprime.
func BigModInverse(a, m *big.Int) *big.Int {
	if m.Sign() <= 0 {
		panic("modulus must be positive")
	}

	if IsPowerOfTwo(m) && a.Bit(0) == 1 {
		return BigInverseModPow2(a, uint(m.BitLen()-1))
	}

	if m.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(0)
	}

	inv := big.NewInt(0).ModInverse(a, m)
	if inv == nil {
		panic("modular inverse does not exist")
	}
	return inv
}
