package mont

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when the modulus is not odd.
	ErrInvalidModulus = errors.New("mont: modulus must be odd")
	// ErrOutOfRange is returned when a value lies outside the domain of a reduction.
	ErrOutOfRange = errors.New("mont: value out of range")
	// ErrInverter is returned when a [ModInverter] returns a value
	// that is not an inverse of the modulus.
	ErrInverter = errors.New("mont: inverter returned a wrong inverse")
)

// InvalidModulusError reports a modulus that cannot be used for Montgomery reduction.
type InvalidModulusError struct {
	Modulus *big.Int
}

func (e *InvalidModulusError) Error() string {
	return fmt.Sprintf("mont: modulus %v must be odd and positive", e.Modulus)
}

// Unwrap returns [ErrInvalidModulus].
func (e *InvalidModulusError) Unwrap() error {
	return ErrInvalidModulus
}

// OutOfRangeError reports an input that lies outside [0, Modulus * 2^RadixBits),
// or outside [0, Modulus) for Montgomery domain conversions.
type OutOfRangeError struct {
	Value     *big.Int
	Modulus   *big.Int
	RadixBits uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("mont: value %v out of range for modulus %v and radix 2^%d", e.Value, e.Modulus, e.RadixBits)
}

// Unwrap returns [ErrOutOfRange].
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
