package dh

import (
	"fmt"
	"io"
	"math/big"

	"safedh/internal/numtheory"
	"safedh/internal/randbig"
)

var one = big.NewInt(1)

// GeneratePrivateKey draws a private exponent uniformly from [1, q-1],
// where q is the order of the subgroup in use.
func GeneratePrivateKey(r io.Reader, q *big.Int) (*big.Int, error) {
	hi := new(big.Int).Sub(q, one)
	x, err := randbig.Range(r, one, hi)
	if err != nil {
		return nil, fmt.Errorf("draw private key: %w", err)
	}
	return x, nil
}

// PublicKey computes y = g^x mod p for private key x.
func PublicKey(x, g, p *big.Int) (*big.Int, error) {
	return numtheory.ModPow(g, x, p)
}

// SharedSecret computes s = peerPub^x mod p from the peer's public key and
// our private key x. Both parties arrive at the same value when their keys
// come from the same group.
func SharedSecret(peerPub, x, p *big.Int) (*big.Int, error) {
	return numtheory.ModPow(peerPub, x, p)
}

// SecretBytes returns the canonical encoding of a shared secret: minimal
// big-endian bytes, which always spans an even number of hex digits. Zero
// encodes as a single zero byte.
func SecretBytes(s *big.Int) []byte {
	b := s.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}
