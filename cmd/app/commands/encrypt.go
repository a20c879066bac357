package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	credentialUseCase "github.com/allisson/formrelay/internal/credential/usecase"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

// RunEncrypt encrypts plaintext under passphrase and prints the CipherToken.
// With write set, the token also replaces the credential file at credentialPath.
func RunEncrypt(
	ctx context.Context,
	textCipher cryptoService.TextCipher,
	credentialUseCase credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
	writer io.Writer,
	passphrase, plaintext string,
	write bool,
	credentialPath string,
) error {
	if plaintext == "" {
		return fmt.Errorf("plaintext argument is required")
	}

	if !write {
		token, err := textCipher.EncryptText(passphrase, plaintext)
		if err != nil {
			return fmt.Errorf("failed to encrypt: %w", err)
		}
		_, _ = fmt.Fprintln(writer, token)
		return nil
	}

	token, err := credentialUseCase.Store(ctx, passphrase, plaintext)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	logger.Info("credential written", slog.String("path", credentialPath))

	_, _ = fmt.Fprintln(writer, token)
	_, _ = fmt.Fprintf(writer, "# Written to %s\n", credentialPath)
	return nil
}
