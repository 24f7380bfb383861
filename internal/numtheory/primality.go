package numtheory

import (
	"fmt"
	"io"
	"math/big"

	"safedh/internal/randbig"
)

// DefaultWitnessRounds is the Miller-Rabin round count used when no count
// is given. Five rounds bound the false-positive probability by 4^-5, which
// is fine for a demonstration but well short of the 2^-80 and beyond
// demanded for real key material; production code should raise it.
const DefaultWitnessRounds = 5

// IsProbablePrime runs rounds independent Miller-Rabin tests on n with
// random witnesses drawn from r. It returns false for proven composites
// and true when every round passes, with a false-positive probability of
// at most 4^-rounds.
func IsProbablePrime(r io.Reader, n *big.Int, rounds int) (bool, error) {
	if rounds <= 0 {
		rounds = DefaultWitnessRounds
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 || n.Cmp(big.NewInt(3)) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Write n-1 = d * 2^s with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	witnessMax := new(big.Int).Sub(n, two)
	for round := 0; round < rounds; round++ {
		a, err := randbig.Range(r, two, witnessMax)
		if err != nil {
			return false, fmt.Errorf("draw witness: %w", err)
		}
		ok, err := witnessRound(a, d, s, n, nMinusOne)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// witnessRound runs one Miller-Rabin round with witness a. It reports
// whether n survives this witness.
func witnessRound(a, d *big.Int, s int, n, nMinusOne *big.Int) (bool, error) {
	x, err := ModPow(a, d, n)
	if err != nil {
		return false, err
	}
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true, nil
	}
	for i := 0; i < s-1; i++ {
		if x, err = ModPow(x, two, n); err != nil {
			return false, err
		}
		if x.Cmp(nMinusOne) == 0 {
			return true, nil
		}
	}
	return false, nil
}
