package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/allisson/formrelay/internal/errors"
)

// CipherToken is a self-describing ciphertext that carries its own IV.
//
// Text form: hex(IV) + ":" + hex(Ciphertext), lowercase.
type CipherToken struct {
	IV         []byte
	Ciphertext []byte
}

// String encodes the token in its persisted text form.
func (t CipherToken) String() string {
	return hex.EncodeToString(t.IV) + TokenSeparator + hex.EncodeToString(t.Ciphertext)
}

// ParseCipherToken decodes the text form of a CipherToken.
//
// Surrounding whitespace (a trailing newline from a file, for instance) is ignored.
// The token is split on the first separator. The IV must decode to exactly IVSize
// bytes and the ciphertext must be non-empty and block aligned. Any violation
// returns an error matching ErrMalformedToken.
func ParseCipherToken(s string) (CipherToken, error) {
	ivHex, ctHex, found := strings.Cut(strings.TrimSpace(s), TokenSeparator)
	if !found {
		return CipherToken{}, errors.Wrap(ErrMalformedToken, "missing separator")
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return CipherToken{}, errors.Wrap(ErrMalformedToken, "invalid iv encoding")
	}
	if len(iv) != IVSize {
		return CipherToken{}, errors.Wrap(
			ErrMalformedToken,
			fmt.Sprintf("iv must be %d bytes, got %d", IVSize, len(iv)),
		)
	}

	if ctHex == "" {
		return CipherToken{}, errors.Wrap(ErrMalformedToken, "empty ciphertext")
	}
	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return CipherToken{}, errors.Wrap(ErrMalformedToken, "invalid ciphertext encoding")
	}
	if len(ciphertext)%BlockSize != 0 {
		return CipherToken{}, errors.Wrap(ErrMalformedToken, "ciphertext is not block aligned")
	}

	return CipherToken{IV: iv, Ciphertext: ciphertext}, nil
}
