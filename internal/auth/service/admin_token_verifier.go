package service

import (
	"crypto/subtle"
)

type adminTokenVerifier struct {
	plainToken string
	tokenHash  string
	hasher     TokenHasher
}

// Enabled reports whether a plain token or a hash is configured.
func (a *adminTokenVerifier) Enabled() bool {
	return a.tokenHash != "" || a.plainToken != ""
}

// Verify checks token against the hash when one is configured, otherwise against
// the plain token.
func (a *adminTokenVerifier) Verify(token string) bool {
	if token == "" {
		return false
	}
	if a.tokenHash != "" {
		return a.hasher.Compare(token, a.tokenHash)
	}
	if a.plainToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.plainToken)) == 1
}

// NewAdminTokenVerifier creates a verifier. tokenHash takes precedence over plainToken.
func NewAdminTokenVerifier(plainToken, tokenHash string, hasher TokenHasher) AdminTokenVerifier {
	return &adminTokenVerifier{
		plainToken: plainToken,
		tokenHash:  tokenHash,
		hasher:     hasher,
	}
}
