package usecase

import (
	"context"
	"fmt"

	credentialDomain "github.com/allisson/formrelay/internal/credential/domain"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

type credentialUseCase struct {
	repo   CredentialRepository
	cipher cryptoService.TextCipher
}

// Reveal reads the credential file and decrypts it.
func (c *credentialUseCase) Reveal(ctx context.Context, passphrase string) (string, error) {
	token, err := c.repo.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", credentialDomain.ErrConfiguration, err)
	}

	secret, err := c.cipher.DecryptText(passphrase, token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", credentialDomain.ErrConfiguration, err)
	}

	return secret, nil
}

// Store encrypts secret and replaces the credential file.
func (c *credentialUseCase) Store(ctx context.Context, passphrase, secret string) (string, error) {
	token, err := c.cipher.EncryptText(passphrase, secret)
	if err != nil {
		return "", err
	}

	if err := c.repo.Write(ctx, token); err != nil {
		return "", err
	}

	return token, nil
}

// NewCredentialUseCase creates a new CredentialUseCase.
func NewCredentialUseCase(repo CredentialRepository, cipher cryptoService.TextCipher) CredentialUseCase {
	return &credentialUseCase{
		repo:   repo,
		cipher: cipher,
	}
}
