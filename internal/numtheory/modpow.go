package numtheory

import (
	"errors"
	"math/big"
)

var (
	// ErrNonPositiveModulus is returned by ModPow when the modulus is
	// zero or negative.
	ErrNonPositiveModulus = errors.New("modulus must be positive")

	// ErrNegativeExponent is returned by ModPow for negative exponents;
	// modular inverses are out of scope here.
	ErrNegativeExponent = errors.New("exponent must be non-negative")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModPow computes base^exp mod m by binary exponentiation
// (square-and-multiply), reducing after every multiplication so operand
// sizes stay bounded by m. It needs O(exp.BitLen()) multiplications and
// never materializes the unreduced power.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if m.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	sq := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, sq)
			result.Mod(result, m)
		}
		sq.Mul(sq, sq)
		sq.Mod(sq, m)
	}
	return result, nil
}
