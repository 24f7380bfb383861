// Package numtheory implements the number-theoretic machinery behind the
// key exchange: modular exponentiation by repeated squaring, the
// Miller-Rabin probabilistic primality test, random prime and safe-prime
// generation, and subgroup-generator discovery.
//
// All search loops take their entropy from an explicit io.Reader and report
// progress through an optional callback, keeping the algorithms free of
// side effects.
package numtheory
