package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCipherToken(t *testing.T) {
	validIV := strings.Repeat("ab", IVSize)
	validCT := strings.Repeat("cd", BlockSize*2)

	t.Run("valid token", func(t *testing.T) {
		token, err := ParseCipherToken(validIV + ":" + validCT)
		require.NoError(t, err)
		assert.Len(t, token.IV, IVSize)
		assert.Len(t, token.Ciphertext, BlockSize*2)
	})

	t.Run("trailing newline is ignored", func(t *testing.T) {
		token, err := ParseCipherToken(validIV + ":" + validCT + "\n")
		require.NoError(t, err)
		assert.Equal(t, validIV+":"+validCT, token.String())
	})

	tests := []struct {
		name  string
		input string
	}{
		{name: "not a token", input: "not-a-valid-token"},
		{name: "empty string", input: ""},
		{name: "missing ciphertext", input: validIV + ":"},
		{name: "missing iv", input: ":" + validCT},
		{name: "non-hex iv", input: strings.Repeat("zz", IVSize) + ":" + validCT},
		{name: "short iv", input: "abcd:" + validCT},
		{name: "long iv", input: strings.Repeat("ab", IVSize+1) + ":" + validCT},
		{name: "non-hex ciphertext", input: validIV + ":" + strings.Repeat("xy", BlockSize)},
		{name: "odd-length hex", input: validIV + ":" + validCT + "a"},
		{name: "misaligned ciphertext", input: validIV + ":" + strings.Repeat("cd", BlockSize-1)},
		{name: "extra separator", input: validIV + ":" + validCT + ":" + validCT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCipherToken(tt.input)
			assert.ErrorIs(t, err, ErrMalformedToken)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
		})
	}
}

func TestCipherToken_String(t *testing.T) {
	token := CipherToken{
		IV:         []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		Ciphertext: []byte{0xff, 0xee},
	}
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f:ffee", token.String())
}
