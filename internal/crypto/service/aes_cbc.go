package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
)

// AESCBCCipher implements AES-256-CBC with PKCS#7 padding.
//
// Each call to Encrypt draws a fresh 16-byte IV, so encrypting the same plaintext
// twice yields different tokens. There is no MAC: ciphertext integrity is not
// protected and a wrong key is only detected when unpadding fails (or by
// content checks higher up).
type AESCBCCipher struct {
	rand io.Reader
}

// NewAESCBCCipher creates an AESCBCCipher that reads IVs from crypto/rand.
func NewAESCBCCipher() *AESCBCCipher {
	return &AESCBCCipher{rand: rand.Reader}
}

// newAESCBCCipherWithRand is used in tests to inject a deterministic IV source.
func newAESCBCCipherWithRand(r io.Reader) *AESCBCCipher {
	return &AESCBCCipher{rand: r}
}

// Encrypt pads plaintext and encrypts it under key with a random IV.
func (c *AESCBCCipher) Encrypt(
	key *cryptoDomain.DerivedKey,
	plaintext []byte,
) (cryptoDomain.CipherToken, error) {
	if key == nil {
		return cryptoDomain.CipherToken{}, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return cryptoDomain.CipherToken{}, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	iv := make([]byte, cryptoDomain.IVSize)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return cryptoDomain.CipherToken{}, fmt.Errorf("failed to generate IV: %w", err)
	}

	padded := pkcs7Pad(plaintext, cryptoDomain.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	cryptoDomain.Zero(padded)

	return cryptoDomain.CipherToken{IV: iv, Ciphertext: ciphertext}, nil
}

// Decrypt decrypts token under key and strips the padding. Bad padding returns
// ErrDecryptionFailed.
func (c *AESCBCCipher) Decrypt(key *cryptoDomain.DerivedKey, token cryptoDomain.CipherToken) ([]byte, error) {
	if key == nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	if len(token.IV) != cryptoDomain.IVSize || len(token.Ciphertext) == 0 ||
		len(token.Ciphertext)%cryptoDomain.BlockSize != 0 {
		return nil, cryptoDomain.ErrMalformedToken
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded := make([]byte, len(token.Ciphertext))
	cipher.NewCBCDecrypter(block, token.IV).CryptBlocks(padded, token.Ciphertext)

	plaintext, ok := pkcs7Unpad(padded, cryptoDomain.BlockSize)
	if !ok {
		cryptoDomain.Zero(padded)
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}
