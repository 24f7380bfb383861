package numtheory_test

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"safedh/internal/numtheory"
)

func TestFindGeneratorOnKnownSafePrime(t *testing.T) {
	// 23 = 2*11 + 1 is a safe prime.
	p := big.NewInt(23)

	g, q, err := numtheory.FindGenerator(rand.Reader, p, 0)
	if err != nil {
		t.Fatalf("FindGenerator(23): %v", err)
	}
	if q.Cmp(big.NewInt(11)) != 0 {
		t.Fatalf("q = %v, want 11", q)
	}

	ord := new(big.Int).Exp(g, q, p)
	if ord.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("g^q mod p = %v, want 1 (g = %v)", ord, g)
	}
	sq := new(big.Int).Exp(g, big.NewInt(2), p)
	if sq.Cmp(big.NewInt(1)) == 0 {
		t.Fatalf("g = %v has order 2", g)
	}
}

func TestFindGeneratorOnGeneratedSafePrime(t *testing.T) {
	p, q, err := numtheory.GenerateSafePrime(rand.Reader, 48, numtheory.Options{Rounds: testRounds})
	if err != nil {
		t.Fatalf("GenerateSafePrime: %v", err)
	}

	g, gq, err := numtheory.FindGenerator(rand.Reader, p, 0)
	if err != nil {
		t.Fatalf("FindGenerator: %v", err)
	}
	if gq.Cmp(q) != 0 {
		t.Fatalf("FindGenerator derived q = %v, want %v", gq, q)
	}

	ord := new(big.Int).Exp(g, q, p)
	if ord.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("g^q mod p = %v, want 1", ord)
	}
	sq := new(big.Int).Exp(g, big.NewInt(2), p)
	if sq.Cmp(big.NewInt(1)) == 0 {
		t.Fatalf("g = %v has order 2", g)
	}
}

func TestFindGeneratorExhaustsOnDegenerateModulus(t *testing.T) {
	// For p = 5, q = 2, no element of [2, 3] generates an order-2
	// subgroup other than p-1 itself, which the g^2 check rejects.
	_, _, err := numtheory.FindGenerator(rand.Reader, big.NewInt(5), 50)
	if !errors.Is(err, numtheory.ErrGeneratorNotFound) {
		t.Fatalf("want ErrGeneratorNotFound, got %v", err)
	}
}
