package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Context labels for the two key streams derived from one shared secret.
const (
	LabelEncryption     = "encryption"
	LabelAuthentication = "authentication"
)

// KeyBytes is the length of each derived key.
const KeyBytes = 32

// Derive expands secret into length bytes of key material bound to label.
// It is HKDF-SHA-256 with an empty salt; identical inputs always produce
// identical output, and distinct labels produce independent streams.
func Derive(secret []byte, label string, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(label))
	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive %q key: %w", label, err)
	}
	return key, nil
}
