package mont_test

import (
	"math/big"
	"math/bits"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sp301415/montred/csprng"
	"github.com/sp301415/montred/mont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v6/ring"
)

func TestReducer64(t *testing.T) {
	us := csprng.NewUniformSampler()

	t.Run("InvalidModulus", func(t *testing.T) {
		_, err := mont.NewReducer64(16)
		assert.ErrorIs(t, err, mont.ErrInvalidModulus)
	})

	t.Run("NPrime", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			n := us.Sample() | 1
			r, err := mont.NewReducer64(n)
			require.NoError(t, err)
			assert.Equal(t, uint64(0), n*r.NPrime()+1)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		r, err := mont.NewReducer64(17)
		require.NoError(t, err)

		_, err = r.Reduce(17, 0)
		assert.ErrorIs(t, err, mont.ErrOutOfRange)

		_, err = r.ToMontgomery(17)
		assert.ErrorIs(t, err, mont.ErrOutOfRange)

		out, err := r.Reduce(16, ^uint64(0))
		require.NoError(t, err)
		assert.Less(t, out, uint64(17))
	})

	t.Run("MRed", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			q := us.SampleOdd(61).Uint64()
			mredConst := ring.GenMRedConstant(q)
			bredConst := ring.GenBRedConstant(q)

			r, err := mont.NewReducer64(q)
			require.NoError(t, err)

			for j := 0; j < 64; j++ {
				x, y := us.SampleN(q), us.SampleN(q)

				hi, lo := bits.Mul64(x, y)
				out, err := r.Reduce(hi, lo)
				require.NoError(t, err)
				assert.Equal(t, ring.MRed(x, y, q, mredConst), out)

				xMont, err := r.ToMontgomery(x)
				require.NoError(t, err)
				assert.Equal(t, ring.MForm(x, q, bredConst), xMont)
			}
		}
	})

	t.Run("Unit", func(t *testing.T) {
		r, err := mont.NewReducer64(1)
		require.NoError(t, err)

		out, err := r.Reduce(0, us.Sample())
		require.NoError(t, err)
		assert.Equal(t, uint64(0), out)
	})
}

func TestReducer64Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("Reducer64 matches Reducer with 64-bit radix", prop.ForAll(
		func(n, hi, lo uint64) bool {
			n |= 1
			hi %= n

			r64, err := mont.NewReducer64(n)
			if err != nil {
				return false
			}
			r, err := mont.NewReducer(new(big.Int).SetUint64(n), 64)
			if err != nil {
				return false
			}

			out64, err := r64.Reduce(hi, lo)
			if err != nil {
				return false
			}

			x := new(big.Int).SetUint64(hi)
			x.Lsh(x, 64)
			x.Or(x, new(big.Int).SetUint64(lo))
			out, err := r.Reduce(x)
			if err != nil {
				return false
			}

			return out.IsUint64() && out.Uint64() == out64
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("Reducer64 handles moduli above 2^63", prop.ForAll(
		func(n, hi, lo uint64) bool {
			n |= 1 << 63
			n |= 1
			hi %= n

			r64, err := mont.NewReducer64(n)
			if err != nil {
				return false
			}
			out64, err := r64.Reduce(hi, lo)
			if err != nil {
				return false
			}

			x := new(big.Int).SetUint64(hi)
			x.Lsh(x, 64)
			x.Or(x, new(big.Int).SetUint64(lo))
			return oracleReduce(x, new(big.Int).SetUint64(n), 64).Uint64() == out64
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
