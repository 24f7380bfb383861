package numtheory

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"safedh/internal/randbig"
)

// ErrPrimeSearchExhausted is returned when a bounded prime search uses up
// its attempt budget without finding a prime.
var ErrPrimeSearchExhausted = errors.New("prime search exhausted attempt budget")

// Progress is called once per search attempt, before the candidate is
// tested. Attempts count from 1.
type Progress func(attempt int)

// Options tunes the search loops.
type Options struct {
	// Rounds is the Miller-Rabin witness count per candidate.
	// DefaultWitnessRounds when zero.
	Rounds int

	// MaxAttempts caps the number of candidates tried. Zero means
	// unbounded, matching the classic generate-and-test behavior; set it
	// when an unresponsive entropy source must not hang the caller.
	MaxAttempts int

	// Progress, when non-nil, observes each attempt.
	Progress Progress
}

func (o Options) rounds() int {
	if o.Rounds <= 0 {
		return DefaultWitnessRounds
	}
	return o.Rounds
}

func (o Options) exhausted(attempt int) bool {
	return o.MaxAttempts > 0 && attempt > o.MaxAttempts
}

// GeneratePrime searches for a probable prime of exactly bits bits by
// sampling odd candidates with the top bit pinned and testing each with
// Miller-Rabin. The expected number of attempts grows roughly linearly in
// bits per the prime number theorem.
func GeneratePrime(r io.Reader, bits int, opts Options) (*big.Int, error) {
	for attempt := 1; ; attempt++ {
		if opts.exhausted(attempt) {
			return nil, fmt.Errorf("no %d-bit prime after %d attempts: %w",
				bits, opts.MaxAttempts, ErrPrimeSearchExhausted)
		}
		if opts.Progress != nil {
			opts.Progress(attempt)
		}

		candidate, err := randbig.Bits(r, bits)
		if err != nil {
			return nil, err
		}
		prime, err := IsProbablePrime(r, candidate, opts.rounds())
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}
}

// GenerateSafePrime searches for a safe prime p of exactly bits bits,
// returning p and its Sophie Germain partner q = (p-1)/2. Each attempt
// generates a (bits-1)-bit prime q and tests p = 2q+1, so every iteration
// pays for two full primality evaluations; this is the most expensive
// operation in the system.
func GenerateSafePrime(r io.Reader, bits int, opts Options) (p, q *big.Int, err error) {
	inner := opts
	inner.Progress = nil // progress reports safe-prime attempts, not inner prime attempts

	for attempt := 1; ; attempt++ {
		if opts.exhausted(attempt) {
			return nil, nil, fmt.Errorf("no %d-bit safe prime after %d attempts: %w",
				bits, opts.MaxAttempts, ErrPrimeSearchExhausted)
		}
		if opts.Progress != nil {
			opts.Progress(attempt)
		}

		q, err = GeneratePrime(r, bits-1, inner)
		if err != nil {
			return nil, nil, err
		}

		// p = 2q + 1
		p = new(big.Int).Lsh(q, 1)
		p.Add(p, one)

		prime, err := IsProbablePrime(r, p, opts.rounds())
		if err != nil {
			return nil, nil, err
		}
		if prime {
			return p, q, nil
		}
	}
}
