package numtheory_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"safedh/internal/numtheory"
)

// testRounds is deliberately higher than DefaultWitnessRounds so that the
// chance of a composite slipping through a test run is negligible (4^-20).
const testRounds = 20

func TestIsProbablePrimeKnownValues(t *testing.T) {
	primes := []int64{
		2, 3, 5, 7, 11, 13, 23, 97, 541, 7919,
		104729, 1000003, 2147483647, // 2^31 - 1, a Mersenne prime
	}
	composites := []int64{
		-7, 0, 1, 4, 9, 15, 21, 25, 91, 1001,
		// Carmichael numbers: Fermat liars for every coprime base, but
		// Miller-Rabin classifies them correctly.
		561, 1105, 1729, 2465, 2821, 6601, 41041, 75361, 101101,
	}

	for _, p := range primes {
		ok, err := numtheory.IsProbablePrime(rand.Reader, big.NewInt(p), testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", p, err)
		}
		if !ok {
			t.Errorf("IsProbablePrime(%d) = false, want true", p)
		}
	}
	for _, c := range composites {
		ok, err := numtheory.IsProbablePrime(rand.Reader, big.NewInt(c), testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", c, err)
		}
		if ok {
			t.Errorf("IsProbablePrime(%d) = true, want false", c)
		}
	}
}

func TestIsProbablePrimeMatchesStdlibSweep(t *testing.T) {
	for n := int64(2); n < 2000; n++ {
		got, err := numtheory.IsProbablePrime(rand.Reader, big.NewInt(n), testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", n, err)
		}
		want := big.NewInt(n).ProbablyPrime(64)
		if got != want {
			t.Fatalf("IsProbablePrime(%d) = %t, stdlib says %t", n, got, want)
		}
	}
}

func TestIsProbablePrimeLargePrime(t *testing.T) {
	// 2^127 - 1 is prime; 2^128 + 1 is not.
	mersenne := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	fermat := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	ok, err := numtheory.IsProbablePrime(rand.Reader, mersenne, testRounds)
	if err != nil {
		t.Fatalf("IsProbablePrime(2^127-1): %v", err)
	}
	if !ok {
		t.Error("IsProbablePrime(2^127-1) = false, want true")
	}

	ok, err = numtheory.IsProbablePrime(rand.Reader, fermat, testRounds)
	if err != nil {
		t.Fatalf("IsProbablePrime(2^128+1): %v", err)
	}
	if ok {
		t.Error("IsProbablePrime(2^128+1) = true, want false")
	}
}
