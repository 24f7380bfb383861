// Package dh implements the finite-field Diffie-Hellman arithmetic: private
// key sampling, public key computation, shared-secret computation, and the
// canonical byte encoding of secrets handed to the KDF.
package dh
