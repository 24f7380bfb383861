package exchange

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"safedh/internal/dh"
	"safedh/internal/domain"
	"safedh/internal/kdf"
	"safedh/internal/numtheory"
	"safedh/internal/util/memzero"
)

// DefaultBits is the safe-prime size used when none is configured.
const DefaultBits = 512

// Service runs key-exchange demonstrations against an injected entropy
// source.
type Service struct {
	rand io.Reader
	opts numtheory.Options
}

// New returns a service drawing entropy from r. opts tunes the prime
// searches; the generator search uses its package default cap.
func New(r io.Reader, opts numtheory.Options) *Service {
	return &Service{rand: r, opts: opts}
}

// GenerateGroup produces a fresh safe-prime group of the given bit size
// together with a generator of its order-q subgroup.
func (s *Service) GenerateGroup(bits int) (domain.Group, error) {
	if bits <= 0 {
		bits = DefaultBits
	}
	p, _, err := numtheory.GenerateSafePrime(s.rand, bits, s.opts)
	if err != nil {
		return domain.Group{}, fmt.Errorf("generate safe prime: %w", err)
	}
	g, q, err := numtheory.FindGenerator(s.rand, p, 0)
	if err != nil {
		return domain.Group{}, fmt.Errorf("find generator: %w", err)
	}
	return domain.Group{P: p, Q: q, G: g}, nil
}

// Run performs a two-party exchange over group and reports whether both
// sides agreed at every stage. Each party's private key never leaves its
// own computation; only public keys cross between the two.
func (s *Service) Run(group domain.Group) (domain.ExchangeResult, error) {
	alice, err := s.newParty("Alice", group)
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	bob, err := s.newParty("Bob", group)
	if err != nil {
		return domain.ExchangeResult{}, err
	}

	if err := alice.complete(bob.Keys.Public, group); err != nil {
		return domain.ExchangeResult{}, err
	}
	if err := bob.complete(alice.Keys.Public, group); err != nil {
		return domain.ExchangeResult{}, err
	}

	return domain.ExchangeResult{
		Group:         group,
		Alice:         alice.PartyResult,
		Bob:           bob.PartyResult,
		SecretsMatch:  alice.Secret.Cmp(bob.Secret) == 0,
		EncKeysMatch:  bytes.Equal(alice.EncKey, bob.EncKey),
		AuthKeysMatch: bytes.Equal(alice.AuthKey, bob.AuthKey),
	}, nil
}

type party struct {
	domain.PartyResult
}

func (s *Service) newParty(name string, group domain.Group) (*party, error) {
	x, err := dh.GeneratePrivateKey(s.rand, group.Q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	y, err := dh.PublicKey(x, group.G, group.P)
	if err != nil {
		return nil, fmt.Errorf("%s: compute public key: %w", name, err)
	}
	return &party{domain.PartyResult{
		Name: name,
		Keys: domain.KeyPair{Private: x, Public: y},
	}}, nil
}

// complete computes the party's shared secret from the peer's public key
// and derives its encryption and authentication keys.
func (p *party) complete(peerPub *big.Int, group domain.Group) error {
	secret, err := dh.SharedSecret(peerPub, p.Keys.Private, group.P)
	if err != nil {
		return fmt.Errorf("%s: compute shared secret: %w", p.Name, err)
	}
	p.Secret = secret

	seed := dh.SecretBytes(secret)
	defer memzero.Zero(seed)

	if p.EncKey, err = kdf.Derive(seed, kdf.LabelEncryption, kdf.KeyBytes); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	if p.AuthKey, err = kdf.Derive(seed, kdf.LabelAuthentication, kdf.KeyBytes); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}
