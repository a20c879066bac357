package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/formrelay/internal/errors"
)

// tokenHasher implements TokenHasher using Argon2id.
type tokenHasher struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plain admin token using Argon2id.
func (t *tokenHasher) Hash(token string) (string, error) {
	hash, err := t.hasher.Hash([]byte(token))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash admin token")
	}
	return hash, nil
}

// Compare performs a constant-time comparison between a plain token and its hash.
func (t *tokenHasher) Compare(token, hash string) bool {
	ok, err := t.hasher.Verify([]byte(token), hash)
	if err != nil {
		return false
	}
	return ok
}

// NewTokenHasher creates a new TokenHasher instance using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewTokenHasher() TokenHasher {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &tokenHasher{
		hasher: hasher,
	}
}
