package commands

import (
	"fmt"
	"io"

	authService "github.com/allisson/formrelay/internal/auth/service"
)

// RunHashAdminToken prints an Argon2id hash of token for ADMIN_TOKEN_HASH.
func RunHashAdminToken(tokenHasher authService.TokenHasher, writer io.Writer, token string) error {
	if token == "" {
		return fmt.Errorf("token argument is required")
	}

	hash, err := tokenHasher.Hash(token)
	if err != nil {
		return fmt.Errorf("failed to hash admin token: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Add this to your environment:")
	_, _ = fmt.Fprintf(writer, "ADMIN_TOKEN_HASH=\"%s\"\n", hash)
	return nil
}
