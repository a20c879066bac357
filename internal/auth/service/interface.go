// Package service provides admin token hashing and verification.
//
// The admin token can be configured in plain text (ADMIN_TOKEN) or as an Argon2id
// PHC hash (ADMIN_TOKEN_HASH). Both are verified in constant time.
package service

// TokenHasher hashes and verifies admin tokens with Argon2id.
type TokenHasher interface {
	// Hash returns the PHC-encoded Argon2id hash of token.
	Hash(token string) (string, error)

	// Compare reports whether token matches hash. Any decode error is a mismatch.
	Compare(token, hash string) bool
}

// AdminTokenVerifier checks tokens presented to admin endpoints.
type AdminTokenVerifier interface {
	// Enabled reports whether any admin token is configured.
	Enabled() bool

	// Verify reports whether token is the configured admin token.
	Verify(token string) bool
}
