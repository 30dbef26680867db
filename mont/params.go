package mont

import (
	"fmt"
	"math/big"
)

// DefaultRadixBits is the radix bit-width used by [NewDefaultReducer].
const DefaultRadixBits = 256

// ParametersLiteral is a structure for Montgomery reduction parameters.
type ParametersLiteral struct {
	// Modulus is the odd modulus n.
	Modulus *big.Int
	// RadixBits is the bit-width of the radix R = 2^RadixBits.
	// Valid inputs to a reduction are in [0, n * R).
	RadixBits uint
}

// Compile transforms ParametersLiteral to read-only Parameters,
// using [DefaultModInverter] for the precomputation.
func (p ParametersLiteral) Compile() (Parameters, error) {
	return p.CompileWithInverter(DefaultModInverter)
}

// CompileWithInverter transforms ParametersLiteral to read-only Parameters,
// using inv to compute n^-1 mod R.
//
// Returns [ErrInvalidModulus] if the modulus is even or negative,
// and [ErrInverter] if inv does not return an inverse of the modulus.
// Panics if the modulus or inv is nil.
func (p ParametersLiteral) CompileWithInverter(inv ModInverter) (Parameters, error) {
	switch {
	case p.Modulus == nil:
		panic("modulus is nil")
	case inv == nil:
		panic("inverter is nil")
	}

	n := big.NewInt(0).Set(p.Modulus)
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return Parameters{}, &InvalidModulusError{Modulus: n}
	}

	radix := big.NewInt(0).Lsh(big.NewInt(1), p.RadixBits)
	mask := big.NewInt(0).Sub(radix, big.NewInt(1))

	nInv := inv.ModInverse(big.NewInt(0).Set(n), big.NewInt(0).Set(radix))
	if nInv == nil || nInv.Sign() < 0 || nInv.Cmp(radix) >= 0 {
		return Parameters{}, fmt.Errorf("%w: got %v for modulus %v and radix 2^%d", ErrInverter, nInv, n, p.RadixBits)
	}

	check := big.NewInt(0).Mul(n, nInv)
	check.And(check, mask)
	if check.Cmp(big.NewInt(0).And(big.NewInt(1), mask)) != 0 {
		return Parameters{}, fmt.Errorf("%w: got %v for modulus %v and radix 2^%d", ErrInverter, nInv, n, p.RadixBits)
	}

	nPrime := big.NewInt(0).Neg(nInv)
	nPrime.And(nPrime, mask)

	bound := big.NewInt(0).Lsh(n, p.RadixBits)

	return Parameters{
		modulus:   n,
		radixBits: p.RadixBits,

		radix:  radix,
		mask:   mask,
		nPrime: nPrime,
		bound:  bound,
	}, nil
}

// Parameters is a read-only structure for Montgomery reduction parameters.
type Parameters struct {
	// modulus is the odd modulus n.
	modulus *big.Int
	// radixBits is the bit-width of the radix.
	radixBits uint

	// radix is R = 2^radixBits.
	radix *big.Int
	// mask is R - 1.
	mask *big.Int
	// nPrime is -n^-1 mod R.
	nPrime *big.Int
	// bound is n * R, the exclusive upper bound of reduction inputs.
	bound *big.Int
}

// Literal returns the ParametersLiteral of this Parameters.
func (p Parameters) Literal() ParametersLiteral {
	return ParametersLiteral{
		Modulus:   p.Modulus(),
		RadixBits: p.radixBits,
	}
}

// Modulus returns a copy of the modulus n.
func (p Parameters) Modulus() *big.Int {
	return big.NewInt(0).Set(p.modulus)
}

// RadixBits returns the bit-width of the radix.
func (p Parameters) RadixBits() uint {
	return p.radixBits
}

// Radix returns a copy of the radix R = 2^RadixBits.
func (p Parameters) Radix() *big.Int {
	return big.NewInt(0).Set(p.radix)
}

// NPrime returns a copy of -n^-1 mod R.
func (p Parameters) NPrime() *big.Int {
	return big.NewInt(0).Set(p.nPrime)
}

// Bound returns a copy of n * R.
func (p Parameters) Bound() *big.Int {
	return big.NewInt(0).Set(p.bound)
}
