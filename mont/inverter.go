package mont

import (
	"math/big"

	"github.com/sp301415/montred/num"
)

// ModInverter computes modular inverses.
//
// ModInverse must return the unique value in [0, m) such that a * result = 1 mod m.
// It is only called with odd a and a power-of-two m.
type ModInverter interface {
	ModInverse(a, m *big.Int) *big.Int
}

// ModInverterFunc adapts an ordinary function to a [ModInverter].
type ModInverterFunc func(a, m *big.Int) *big.Int

// ModInverse calls f(a, m).
func (f ModInverterFunc) ModInverse(a, m *big.Int) *big.Int {
	return f(a, m)
}

// DefaultModInverter is used when no [ModInverter] is supplied.
var DefaultModInverter ModInverter = ModInverterFunc(num.BigModInverse)
