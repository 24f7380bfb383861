package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Group holds the public parameters of a safe-prime Diffie-Hellman group.
//
// P is a safe prime, Q = (P-1)/2 is the order of the subgroup generated by
// G, and G satisfies G^Q = 1 (mod P) with G^2 != 1 (mod P). All three are
// public, shareable values; once produced they are never mutated.
type Group struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

// Bits returns the bit length of the safe prime.
func (g Group) Bits() int {
	if g.P == nil {
		return 0
	}
	return g.P.BitLen()
}

type groupJSON struct {
	P string `json:"p"`
	Q string `json:"q"`
	G string `json:"g"`
}

// MarshalJSON encodes the parameters as lowercase hex for stable JSON.
func (g Group) MarshalJSON() ([]byte, error) {
	if g.P == nil || g.Q == nil || g.G == nil {
		return nil, fmt.Errorf("group has nil parameters")
	}
	return json.Marshal(groupJSON{
		P: g.P.Text(16),
		Q: g.Q.Text(16),
		G: g.G.Text(16),
	})
}

// UnmarshalJSON decodes hex-encoded parameters.
func (g *Group) UnmarshalJSON(data []byte) error {
	var aux groupJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p, ok := new(big.Int).SetString(aux.P, 16)
	if !ok {
		return fmt.Errorf("invalid hex for p: %q", aux.P)
	}
	q, ok := new(big.Int).SetString(aux.Q, 16)
	if !ok {
		return fmt.Errorf("invalid hex for q: %q", aux.Q)
	}
	gen, ok := new(big.Int).SetString(aux.G, 16)
	if !ok {
		return fmt.Errorf("invalid hex for g: %q", aux.G)
	}
	g.P, g.Q, g.G = p, q, gen
	return nil
}

// KeyPair is one party's Diffie-Hellman key pair. Private stays inside the
// owning party's computation; Public may be shared freely.
type KeyPair struct {
	Private *big.Int
	Public  *big.Int
}

// PartyResult captures everything one side computed during an exchange.
type PartyResult struct {
	Name    string
	Keys    KeyPair
	Secret  *big.Int
	EncKey  []byte
	AuthKey []byte
}

// ExchangeResult is the full outcome of a two-party demonstration run,
// including whether both sides agreed at every stage.
type ExchangeResult struct {
	Group Group

	Alice PartyResult
	Bob   PartyResult

	SecretsMatch  bool
	EncKeysMatch  bool
	AuthKeysMatch bool
}

// OK reports whether every stage of the exchange agreed.
func (r ExchangeResult) OK() bool {
	return r.SecretsMatch && r.EncKeysMatch && r.AuthKeysMatch
}
