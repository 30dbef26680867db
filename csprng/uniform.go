// Package csprng implements samplers for test vectors and examples.
package csprng

import (
	"crypto/rand"
	"math"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b as a underlying prng.
//
// UniformSampler is not safe for concurrent use.
type UniformSampler struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
// Samplers with the same seed produce the same values.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prng: prng,

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if s.ptr == bufSize {
			s.fill()
		}
		c := copy(p[n:], s.buf[s.ptr:])
		s.ptr += c
		n += c
	}
	return n, nil
}

func (s *UniformSampler) fill() {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	s.ptr = 0
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr > bufSize-8 {
		s.fill()
	}

	var res uint64
	res |= uint64(s.buf[s.ptr+0])
	res |= uint64(s.buf[s.ptr+1]) << 8
	res |= uint64(s.buf[s.ptr+2]) << 16
	res |= uint64(s.buf[s.ptr+3]) << 24
	res |= uint64(s.buf[s.ptr+4]) << 32
	res |= uint64(s.buf[s.ptr+5]) << 40
	res |= uint64(s.buf[s.ptr+6]) << 48
	res |= uint64(s.buf[s.ptr+7]) << 56
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *UniformSampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// SampleBigN uniformly samples a random integer in [0, N).
//
// Panics if N is not positive.
func (s *UniformSampler) SampleBigN(N *big.Int) *big.Int {
	if N.Sign() <= 0 {
		panic("bound must be positive")
	}

	bitLen := N.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	topMask := byte(0xff) >> (8*len(buf) - bitLen)

	res := big.NewInt(0)
	for {
		s.Read(buf)
		buf[0] &= topMask
		res.SetBytes(buf)
		if res.Cmp(N) < 0 {
			return res
		}
	}
}

// SampleOdd samples a random odd integer of exactly bitLen bits.
//
// Panics if bitLen is zero.
func (s *UniformSampler) SampleOdd(bitLen uint) *big.Int {
	if bitLen == 0 {
		panic("bit length must be positive")
	}

	bound := big.NewInt(0).Lsh(big.NewInt(1), bitLen-1)
	res := s.SampleBigN(bound)
	res.SetBit(res, int(bitLen-1), 1)
	res.SetBit(res, 0, 1)
	return res
}
