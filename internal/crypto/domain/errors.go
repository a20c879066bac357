package domain

import (
	"github.com/allisson/formrelay/internal/errors"
)

var (
	// ErrEmptyPassphrase indicates no passphrase was configured. This is a
	// configuration problem; callers should reject it before any crypto runs.
	ErrEmptyPassphrase = errors.Wrap(errors.ErrInvalidInput, "passphrase must not be empty")

	// ErrInvalidKeySize indicates a key that is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed is returned for every decryption failure: malformed
	// tokens, bad padding and plaintext that is not valid UTF-8.
	//
	// CBC carries no authentication tag, so a wrong key is only detected through
	// padding or content checks. The specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrMalformedToken indicates a CipherToken that cannot be parsed. It also
	// matches ErrDecryptionFailed.
	ErrMalformedToken = errors.Wrap(ErrDecryptionFailed, "malformed cipher token")
)
