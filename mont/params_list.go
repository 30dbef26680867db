package mont

import (
	bls12381fp "github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	secp256k1fp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/tuneinsight/lattigo/v6/utils/bignum"
)

var (
	// ParamsBN254Scalar is the scalar field of BN254 with R = 2^256.
	ParamsBN254Scalar = ParametersLiteral{
		Modulus:   bn254fr.Modulus(),
		RadixBits: 256,
	}

	// ParamsBN254Base is the base field of BN254 with R = 2^256.
	ParamsBN254Base = ParametersLiteral{
		Modulus:   bn254fp.Modulus(),
		RadixBits: 256,
	}

	// ParamsBLS12381Scalar is the scalar field of BLS12-381 with R = 2^256.
	ParamsBLS12381Scalar = ParametersLiteral{
		Modulus:   bls12381fr.Modulus(),
		RadixBits: 256,
	}

	// ParamsBLS12381Base is the base field of BLS12-381.
	// The modulus is 381 bits, so R = 2^384 (six 64-bit limbs).
	ParamsBLS12381Base = ParametersLiteral{
		Modulus:   bls12381fp.Modulus(),
		RadixBits: 384,
	}

	// ParamsSecp256k1Base is the base field of secp256k1 with R = 2^256.
	ParamsSecp256k1Base = ParametersLiteral{
		Modulus:   secp256k1fp.Modulus(),
		RadixBits: 256,
	}

	// ParamsP256Base is the base field of NIST P-256 with R = 2^256.
	ParamsP256Base = ParametersLiteral{
		Modulus:   bignum.NewInt("0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		RadixBits: 256,
	}

	// ParamsCurve25519Base is the base field 2^255 - 19 with R = 2^256.
	ParamsCurve25519Base = ParametersLiteral{
		Modulus:   bignum.NewInt("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"),
		RadixBits: 256,
	}

	// ParamsGoldilocks is the prime 2^64 - 2^32 + 1 with R = 2^64.
	ParamsGoldilocks = ParametersLiteral{
		Modulus:   bignum.NewInt(uint64(0xffffffff00000001)),
		RadixBits: 64,
	}
)
