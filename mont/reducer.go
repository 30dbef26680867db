// Package mont implements Montgomery reduction over arbitrary-precision integers.
//
// For an odd modulus n and a radix R = 2^k, a [Reducer] maps t in [0, n*R)
// to t * R^-1 mod n using only masks, shifts and multiplications.
package mont

import (
	"math/big"
)

// Reducer computes the Montgomery reduction.
// It assumes that the inputs are between 0 and n * 2^RadixBits.
//
// A Reducer is never modified after creation and keeps no buffers,
// so it is safe for concurrent use.
type Reducer struct {
	Parameters
}

// NewReducer creates a new Reducer for the given odd modulus n and radix R = 2^rBits.
func NewReducer(n *big.Int, rBits uint) (*Reducer, error) {
	return NewReducerWithInverter(n, rBits, DefaultModInverter)
}

// NewDefaultReducer creates a new Reducer for the given odd modulus n
// with radix R = 2^[DefaultRadixBits].
func NewDefaultReducer(n *big.Int) (*Reducer, error) {
	return NewReducer(n, DefaultRadixBits)
}

// NewReducerWithInverter creates a new Reducer,
// using inv to compute n^-1 mod R.
func NewReducerWithInverter(n *big.Int, rBits uint, inv ModInverter) (*Reducer, error) {
	params, err := ParametersLiteral{Modulus: n, RadixBits: rBits}.CompileWithInverter(inv)
	if err != nil {
		return nil, err
	}
	return NewReducerFromParameters(params), nil
}

// NewReducerFromParameters creates a new Reducer from compiled Parameters.
func NewReducerFromParameters(params Parameters) *Reducer {
	if params.modulus == nil {
		panic("parameters are not compiled")
	}
	return &Reducer{Parameters: params}
}

// Reduce returns t * R^-1 mod n.
func (r *Reducer) Reduce(t *big.Int) (*big.Int, error) {
	out := big.NewInt(0)
	if err := r.ReduceTo(out, t); err != nil {
		return nil, err
	}
	return out, nil
}

// ReduceTo sets dst to t * R^-1 mod n.
// dst may alias t. On error, dst is left unchanged.
func (r *Reducer) ReduceTo(dst, t *big.Int) error {
	if t.Sign() < 0 || t.Cmp(r.bound) >= 0 {
		return &OutOfRangeError{
			Value:     big.NewInt(0).Set(t),
			Modulus:   r.Modulus(),
			RadixBits: r.radixBits,
		}
	}

	// m = ((t mod R) * n') mod R
	m := big.NewInt(0).And(t, r.mask)
	m.Mul(m, r.nPrime)
	m.And(m, r.mask)

	// u = (t + m * n) / R, where the low bits of t + m * n are zero.
	m.Mul(m, r.modulus)
	m.Add(m, t)
	m.Rsh(m, r.radixBits)

	if m.Cmp(r.modulus) >= 0 {
		m.Sub(m, r.modulus)
	}

	dst.Set(m)
	return nil
}
