// Package memzero provides best-effort wiping of sensitive values.
package memzero

import (
	"crypto/subtle"
	"math/big"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroBig clears the limbs backing z and resets it to zero. Useful for
// private exponents and shared secrets once they are no longer needed.
func ZeroBig(z *big.Int) {
	if z == nil {
		return
	}
	words := z.Bits()
	for i := range words {
		words[i] = 0
	}
	z.SetInt64(0)
}
