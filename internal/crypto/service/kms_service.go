package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService wraps passphrases with a KMS key so ENCRYPTION_PASSWORD and
// OLD_ENCRYPTION_PASSWORD can be deployed as ciphertext. Wrapped values are the
// keeper ciphertext in standard base64.
//
// Key URIs: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
type KMSService interface {
	// Wrap encrypts passphrase under the key at keyURI.
	Wrap(ctx context.Context, keyURI, passphrase string) (string, error)

	// Unwrap reverses Wrap. Callers should zero the returned bytes after use.
	Unwrap(ctx context.Context, keyURI, wrapped string) ([]byte, error)
}

type keeperOpener func(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)

type kmsService struct {
	open keeperOpener
}

// NewKMSService creates a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{open: openSecretsKeeper}
}

func openSecretsKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// withKeeper opens a keeper for one call and closes it afterwards. Passphrases are
// resolved once per process, so keepers are not cached.
func (k *kmsService) withKeeper(
	ctx context.Context,
	keyURI string,
	fn func(keeper cryptoDomain.KMSKeeper) error,
) (err error) {
	keeper, err := k.open(ctx, keyURI)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close KMS keeper: %w", closeErr)
		}
	}()

	return fn(keeper)
}

func (k *kmsService) Wrap(ctx context.Context, keyURI, passphrase string) (string, error) {
	if passphrase == "" {
		return "", cryptoDomain.ErrEmptyPassphrase
	}

	var wrapped string
	err := k.withKeeper(ctx, keyURI, func(keeper cryptoDomain.KMSKeeper) error {
		ciphertext, err := keeper.Encrypt(ctx, []byte(passphrase))
		if err != nil {
			return fmt.Errorf("failed to wrap passphrase: %w", err)
		}
		wrapped = base64.StdEncoding.EncodeToString(ciphertext)
		return nil
	})
	if err != nil {
		return "", err
	}

	return wrapped, nil
}

func (k *kmsService) Unwrap(ctx context.Context, keyURI, wrapped string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to decode KMS-wrapped passphrase: %w", err)
	}

	var plaintext []byte
	err = k.withKeeper(ctx, keyURI, func(keeper cryptoDomain.KMSKeeper) error {
		plaintext, err = keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return fmt.Errorf("failed to unwrap passphrase: %w", err)
		}
		return nil
	})
	if err != nil {
		cryptoDomain.Zero(plaintext)
		return nil, err
	}

	return plaintext, nil
}
