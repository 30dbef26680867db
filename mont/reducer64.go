package mont

import (
	"math/big"
	"math/bits"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// Reducer64 computes the Montgomery reduction for a word-sized modulus
// with fixed radix R = 2^64.
// Inputs are 128-bit values hi * 2^64 + lo with hi < n.
type Reducer64 struct {
	n      uint64
	nPrime uint64
}

// NewReducer64 creates a new Reducer64 for the given odd modulus n.
func NewReducer64(n uint64) (*Reducer64, error) {
	if n&1 == 0 {
		return nil, &InvalidModulusError{Modulus: new(big.Int).SetUint64(n)}
	}

	return &Reducer64{
		n:      n,
		nPrime: -ring.GenMRedConstant(n),
	}, nil
}

// Modulus returns the modulus n.
func (r *Reducer64) Modulus() uint64 {
	return r.n
}

// NPrime returns -n^-1 mod 2^64.
func (r *Reducer64) NPrime() uint64 {
	return r.nPrime
}

// Reduce returns (hi * 2^64 + lo) * 2^-64 mod n.
func (r *Reducer64) Reduce(hi, lo uint64) (uint64, error) {
	if hi >= r.n {
		value := new(big.Int).SetUint64(hi)
		value.Lsh(value, 64)
		value.Or(value, new(big.Int).SetUint64(lo))
		return 0, &OutOfRangeError{
			Value:     value,
			Modulus:   new(big.Int).SetUint64(r.n),
			RadixBits: 64,
		}
	}

	m := lo * r.nPrime
	mhi, mlo := bits.Mul64(m, r.n)
	_, c := bits.Add64(lo, mlo, 0)
	u, c := bits.Add64(hi, mhi, c)

	// The true quotient is c * 2^64 + u < 2n.
	if c != 0 || u >= r.n {
		u -= r.n
	}
	return u, nil
}

// ToMontgomery returns a * 2^64 mod n.
// a must be in [0, n).
func (r *Reducer64) ToMontgomery(a uint64) (uint64, error) {
	if a >= r.n {
		return 0, &OutOfRangeError{
			Value:     new(big.Int).SetUint64(a),
			Modulus:   new(big.Int).SetUint64(r.n),
			RadixBits: 64,
		}
	}
	return bits.Rem64(a, 0, r.n), nil
}
