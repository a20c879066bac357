// Package usecase implements reveal and store operations on the encrypted credential.
package usecase

import (
	"context"
	"time"
)

// CredentialRepository defines the interface for credential persistence.
type CredentialRepository interface {
	Path() string
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, token string) error
	Backup(ctx context.Context, now time.Time) (string, error)
}

// CredentialUseCase defines the interface for credential operations.
type CredentialUseCase interface {
	// Reveal reads and decrypts the credential. Every failure matches
	// credentialDomain.ErrConfiguration; the underlying cause stays in the chain
	// for logging.
	//
	// Security Note: the returned value is the plaintext API key. Do not log it.
	Reveal(ctx context.Context, passphrase string) (string, error)

	// Store encrypts secret under passphrase, writes it and returns the token.
	Store(ctx context.Context, passphrase, secret string) (string, error)
}
