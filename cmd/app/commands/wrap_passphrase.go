package commands

import (
	"context"
	"fmt"
	"io"

	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

// RunWrapPassphrase prints passphrase wrapped by the KMS key at keyURI, ready to
// be used as ENCRYPTION_PASSWORD or OLD_ENCRYPTION_PASSWORD with KMS_KEY_URI set.
func RunWrapPassphrase(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	writer io.Writer,
	keyURI, passphrase string,
) error {
	if keyURI == "" {
		return fmt.Errorf("KMS key URI is required (--key-uri or KMS_KEY_URI)")
	}
	if passphrase == "" {
		return fmt.Errorf("passphrase argument is required")
	}

	wrapped, err := kmsService.Wrap(ctx, keyURI, passphrase)
	if err != nil {
		return fmt.Errorf("failed to wrap passphrase: %w", err)
	}

	_, _ = fmt.Fprintln(writer, wrapped)
	return nil
}
