package app

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
	customValidation "github.com/allisson/formrelay/internal/validation"
)

// recommendedPassphrase is checked at startup; a weak passphrase only logs a warning
// because existing files are already encrypted under it.
var recommendedPassphrase = customValidation.PassphraseStrength{
	MinLength:     12,
	RequireUpper:  true,
	RequireLower:  true,
	RequireNumber: true,
}

// TextCipher returns the passphrase-based text cipher.
func (c *Container) TextCipher() cryptoService.TextCipher {
	c.textCipherInit.Do(func() {
		c.textCipher = cryptoService.NewDefaultTextCipher()
	})
	return c.textCipher
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// PassphraseResolver returns the resolver for configured passphrases.
func (c *Container) PassphraseResolver() cryptoService.PassphraseResolver {
	c.passphraseResolverInit.Do(func() {
		c.passphraseResolver = cryptoService.NewPassphraseResolver(c.KMSService(), c.config.KMSKeyURI)
	})
	return c.passphraseResolver
}

// EncryptionPassphrase returns the current passphrase, unwrapped through the KMS when configured.
func (c *Container) EncryptionPassphrase(ctx context.Context) (string, error) {
	var err error
	c.encryptionPassphraseInit.Do(func() {
		c.encryptionPassphrase, err = c.resolvePassphrase(ctx, "ENCRYPTION_PASSWORD", c.config.EncryptionPassword)
		if err != nil {
			c.initErrors["encryptionPassphrase"] = err
		}
	})
	if err != nil {
		return "", err
	}
	if storedErr, exists := c.initErrors["encryptionPassphrase"]; exists {
		return "", storedErr
	}
	return c.encryptionPassphrase, nil
}

// OldEncryptionPassphrase returns the passphrase being rotated away from.
func (c *Container) OldEncryptionPassphrase(ctx context.Context) (string, error) {
	var err error
	c.oldPassphraseInit.Do(func() {
		c.oldEncryptionPassphrase, err = c.resolvePassphrase(
			ctx,
			"OLD_ENCRYPTION_PASSWORD",
			c.config.OldEncryptionPassword,
		)
		if err != nil {
			c.initErrors["oldEncryptionPassphrase"] = err
		}
	})
	if err != nil {
		return "", err
	}
	if storedErr, exists := c.initErrors["oldEncryptionPassphrase"]; exists {
		return "", storedErr
	}
	return c.oldEncryptionPassphrase, nil
}

// resolvePassphrase unwraps a configured passphrase and warns when it looks weak.
func (c *Container) resolvePassphrase(ctx context.Context, name, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%s is required: %w", name, cryptoDomain.ErrEmptyPassphrase)
	}

	passphrase, err := c.PassphraseResolver().Resolve(ctx, value)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	if err := validation.Validate(passphrase, recommendedPassphrase); err != nil {
		c.Logger().Warn("weak encryption passphrase",
			slog.String("variable", name),
			slog.String("reason", err.Error()))
	}

	return passphrase, nil
}
