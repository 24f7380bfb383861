package numtheory

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"safedh/internal/randbig"
)

// DefaultGeneratorAttempts caps the subgroup-generator search. For a
// correctly generated safe prime almost half of all candidates qualify, so
// hitting this cap points at a corrupted or non-safe-prime modulus rather
// than bad luck.
const DefaultGeneratorAttempts = 1000

// ErrGeneratorNotFound is returned when the generator search exhausts its
// attempt cap.
var ErrGeneratorNotFound = errors.New("no subgroup generator found")

// FindGenerator searches for a generator g of the order-q subgroup of the
// multiplicative group modulo the safe prime p, where q = (p-1)/2.
// Candidates are drawn uniformly from [2, p-2]; g is accepted when
// g^q = 1 (mod p) and g^2 != 1 (mod p), the second check rejecting the
// trivial order-2 element. maxAttempts <= 0 selects
// DefaultGeneratorAttempts.
func FindGenerator(r io.Reader, p *big.Int, maxAttempts int) (g, q *big.Int, err error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultGeneratorAttempts
	}

	q = new(big.Int).Sub(p, one)
	q.Rsh(q, 1)

	lo := big.NewInt(2)
	hi := new(big.Int).Sub(p, two)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		g, err = randbig.Range(r, lo, hi)
		if err != nil {
			return nil, nil, fmt.Errorf("draw generator candidate: %w", err)
		}

		sq, err := ModPow(g, two, p)
		if err != nil {
			return nil, nil, err
		}
		if sq.Cmp(one) == 0 {
			continue
		}
		ord, err := ModPow(g, q, p)
		if err != nil {
			return nil, nil, err
		}
		if ord.Cmp(one) == 0 {
			return g, q, nil
		}
	}
	return nil, nil, fmt.Errorf("after %d attempts: %w", maxAttempts, ErrGeneratorNotFound)
}
