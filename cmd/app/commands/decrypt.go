package commands

import (
	"fmt"
	"io"

	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

// RunDecrypt decrypts a CipherToken and prints the plaintext.
func RunDecrypt(
	textCipher cryptoService.TextCipher,
	writer io.Writer,
	passphrase, token string,
) error {
	if token == "" {
		return fmt.Errorf("token argument is required")
	}

	plaintext, err := textCipher.DecryptText(passphrase, token)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	_, _ = fmt.Fprintln(writer, plaintext)
	return nil
}
