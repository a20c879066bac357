package service

import (
	"crypto/sha256"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
)

// SHA256KeyDeriver derives keys as SHA-256(passphrase).
//
// There is no salt and no work factor: equal passphrases always give equal keys and
// derivation is fast. That keeps existing files readable but makes the scheme weak
// against offline guessing of low-entropy passphrases. Operators should use long
// random passphrases.
type SHA256KeyDeriver struct{}

// NewSHA256KeyDeriver creates a SHA256KeyDeriver.
func NewSHA256KeyDeriver() *SHA256KeyDeriver {
	return &SHA256KeyDeriver{}
}

// Derive returns SHA-256(passphrase). An empty passphrase returns ErrEmptyPassphrase.
func (d *SHA256KeyDeriver) Derive(passphrase string) (*cryptoDomain.DerivedKey, error) {
	if passphrase == "" {
		return nil, cryptoDomain.ErrEmptyPassphrase
	}

	key := cryptoDomain.DerivedKey(sha256.Sum256([]byte(passphrase)))
	return &key, nil
}
