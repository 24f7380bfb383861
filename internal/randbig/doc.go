// Package randbig turns a cryptographically secure byte source into
// uniformly distributed arbitrary-precision integers.
//
// Contents
//
//   - Exact-bit-length odd integers for prime candidates (Bits)
//   - Uniform draws from an inclusive range via rejection sampling (Range)
//
// The byte source is always an explicit io.Reader argument (normally
// crypto/rand.Reader) so tests can substitute a deterministic stream.
package randbig
