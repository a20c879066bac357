package service

import (
	"context"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
)

// plainPassphraseResolver returns configured passphrases unchanged.
type plainPassphraseResolver struct{}

func (plainPassphraseResolver) Resolve(_ context.Context, value string) (string, error) {
	if value == "" {
		return "", cryptoDomain.ErrEmptyPassphrase
	}
	return value, nil
}

// kmsPassphraseResolver treats configured values as base64 KMS ciphertext.
type kmsPassphraseResolver struct {
	kmsService KMSService
	keyURI     string
}

// Resolve unwraps value through the KMS.
func (r *kmsPassphraseResolver) Resolve(ctx context.Context, value string) (string, error) {
	if value == "" {
		return "", cryptoDomain.ErrEmptyPassphrase
	}

	plaintext, err := r.kmsService.Unwrap(ctx, r.keyURI, value)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	if len(plaintext) == 0 {
		return "", cryptoDomain.ErrEmptyPassphrase
	}

	return string(plaintext), nil
}

// NewPassphraseResolver returns a resolver that unwraps values through the KMS at
// keyURI, or passes them through when keyURI is empty.
func NewPassphraseResolver(kmsService KMSService, keyURI string) PassphraseResolver {
	if keyURI == "" {
		return plainPassphraseResolver{}
	}
	return &kmsPassphraseResolver{kmsService: kmsService, keyURI: keyURI}
}
