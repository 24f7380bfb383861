// Package kdf expands a shared secret into independent key material using
// HKDF with SHA-256.
package kdf
