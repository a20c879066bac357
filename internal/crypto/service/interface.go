// Package service provides the cryptographic primitives behind the credential
// store and the encrypted audit log: SHA-256 passphrase key derivation, AES-256-CBC
// with PKCS#7 padding, and a text-level cipher that speaks CipherTokens.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
)

// KeyDeriver turns an operator passphrase into a fixed-size symmetric key.
type KeyDeriver interface {
	// Derive returns the key for passphrase. The caller owns the key and should
	// zero it when done.
	Derive(passphrase string) (*cryptoDomain.DerivedKey, error)
}

// BlockCipher encrypts byte strings into CipherTokens and back.
type BlockCipher interface {
	// Encrypt encrypts plaintext under key with a freshly generated IV.
	Encrypt(key *cryptoDomain.DerivedKey, plaintext []byte) (cryptoDomain.CipherToken, error)

	// Decrypt reverses Encrypt. Success at this level does not prove the key was
	// right; callers must validate the content.
	Decrypt(key *cryptoDomain.DerivedKey, token cryptoDomain.CipherToken) ([]byte, error)
}

// TextCipher is the passphrase-level API used by the credential store, the audit
// log and key rotation.
type TextCipher interface {
	// EncryptText derives the key from passphrase and returns the CipherToken text.
	EncryptText(passphrase, plaintext string) (string, error)

	// DecryptText parses token, decrypts it with the key derived from passphrase and
	// checks the result is valid UTF-8. An empty passphrase returns ErrEmptyPassphrase;
	// every other failure matches ErrDecryptionFailed.
	DecryptText(passphrase, token string) (string, error)
}

// PassphraseResolver turns a configured passphrase value into the passphrase
// itself, unwrapping it through a KMS when one is configured.
type PassphraseResolver interface {
	Resolve(ctx context.Context, value string) (string, error)
}
