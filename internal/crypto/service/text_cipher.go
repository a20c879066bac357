package service

import (
	"unicode/utf8"

	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
)

type textCipher struct {
	deriver KeyDeriver
	cipher  BlockCipher
}

// EncryptText derives the key, encrypts plaintext and renders the token.
func (t *textCipher) EncryptText(passphrase, plaintext string) (string, error) {
	key, err := t.deriver.Derive(passphrase)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	token, err := t.cipher.Encrypt(key, []byte(plaintext))
	if err != nil {
		return "", err
	}

	return token.String(), nil
}

// DecryptText parses and decrypts token. Plaintext that is not valid UTF-8 is
// treated as a wrong-key result.
func (t *textCipher) DecryptText(passphrase, token string) (string, error) {
	parsed, err := cryptoDomain.ParseCipherToken(token)
	if err != nil {
		return "", err
	}

	key, err := t.deriver.Derive(passphrase)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	plaintext, err := t.cipher.Decrypt(key, parsed)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	if !utf8.Valid(plaintext) {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// NewTextCipher creates a TextCipher from a deriver and a block cipher.
func NewTextCipher(deriver KeyDeriver, cipher BlockCipher) TextCipher {
	return &textCipher{deriver: deriver, cipher: cipher}
}

// NewDefaultTextCipher wires SHA-256 key derivation with AES-256-CBC.
func NewDefaultTextCipher() TextCipher {
	return NewTextCipher(NewSHA256KeyDeriver(), NewAESCBCCipher())
}
