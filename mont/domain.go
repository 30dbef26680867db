package mont

import (
	"math/big"
)

// ToMontgomery returns a * R mod n, the Montgomery representation of a.
// a must be in [0, n).
func (r *Reducer) ToMontgomery(a *big.Int) (*big.Int, error) {
	if err := r.checkResidue(a); err != nil {
		return nil, err
	}

	out := big.NewInt(0).Lsh(a, r.radixBits)
	return out.Mod(out, r.modulus), nil
}

// FromMontgomery returns x * R^-1 mod n, the inverse of [Reducer.ToMontgomery].
// x must be in [0, n).
func (r *Reducer) FromMontgomery(x *big.Int) (*big.Int, error) {
	if err := r.checkResidue(x); err != nil {
		return nil, err
	}
	return r.Reduce(x)
}

// checkResidue checks if x is in [0, n).
func (r *Reducer) checkResidue(x *big.Int) error {
	if x.Sign() < 0 || x.Cmp(r.modulus) >= 0 {
		return &OutOfRangeError{
			Value:     big.NewInt(0).Set(x),
			Modulus:   r.Modulus(),
			RadixBits: r.radixBits,
		}
	}
	return nil
}
