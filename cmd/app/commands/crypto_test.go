package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/allisson/formrelay/internal/auth/service"
	credentialMocks "github.com/allisson/formrelay/internal/credential/usecase/mocks"
	cryptoDomain "github.com/allisson/formrelay/internal/crypto/domain"
	cryptoService "github.com/allisson/formrelay/internal/crypto/service"
)

func TestRunEncrypt(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	textCipher := cryptoService.NewDefaultTextCipher()

	t.Run("success-print-only", func(t *testing.T) {
		mockUseCase := &credentialMocks.MockCredentialUseCase{}

		var out bytes.Buffer
		err := RunEncrypt(ctx, textCipher, mockUseCase, logger, &out, "pass", "secret", false, "config/keys.encrypted")
		require.NoError(t, err)

		token := strings.TrimSpace(out.String())
		plaintext, err := textCipher.DecryptText("pass", token)
		require.NoError(t, err)
		assert.Equal(t, "secret", plaintext)
		mockUseCase.AssertNotCalled(t, "Store")
	})

	t.Run("success-write", func(t *testing.T) {
		mockUseCase := &credentialMocks.MockCredentialUseCase{}
		mockUseCase.On("Store", ctx, "pass", "secret").Return("00:11", nil).Once()

		var out bytes.Buffer
		err := RunEncrypt(ctx, textCipher, mockUseCase, logger, &out, "pass", "secret", true, "config/keys.encrypted")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "00:11")
		assert.Contains(t, out.String(), "# Written to config/keys.encrypted")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("error-store", func(t *testing.T) {
		mockUseCase := &credentialMocks.MockCredentialUseCase{}
		mockUseCase.On("Store", ctx, "pass", "secret").Return("", errors.New("disk full")).Once()

		var out bytes.Buffer
		err := RunEncrypt(ctx, textCipher, mockUseCase, logger, &out, "pass", "secret", true, "keys")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store credential")
		assert.Empty(t, out.String())
	})

	t.Run("error-missing-plaintext", func(t *testing.T) {
		err := RunEncrypt(ctx, textCipher, nil, logger, nil, "pass", "", false, "keys")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plaintext argument is required")
	})

	t.Run("error-empty-passphrase", func(t *testing.T) {
		var out bytes.Buffer
		err := RunEncrypt(ctx, textCipher, nil, logger, &out, "", "secret", false, "keys")
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyPassphrase)
	})
}

func TestRunDecrypt(t *testing.T) {
	textCipher := cryptoService.NewDefaultTextCipher()

	token, err := textCipher.EncryptText("pass", "secret")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunDecrypt(textCipher, &out, "pass", token))
		assert.Equal(t, "secret\n", out.String())
	})

	t.Run("known-answer", func(t *testing.T) {
		var out bytes.Buffer
		err := RunDecrypt(
			textCipher,
			&out,
			"correct horse battery staple",
			"000102030405060708090a0b0c0d0e0f:60b9c36f21faaa0c8cb7d64095db0792",
		)
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", out.String())
	})

	t.Run("error-wrong-passphrase", func(t *testing.T) {
		var out bytes.Buffer
		err := RunDecrypt(
			textCipher,
			&out,
			"wrong",
			"000102030405060708090a0b0c0d0e0f:60b9c36f21faaa0c8cb7d64095db0792",
		)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("error-malformed-token", func(t *testing.T) {
		var out bytes.Buffer
		err := RunDecrypt(textCipher, &out, "pass", "not-a-valid-token")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.Empty(t, out.String())
	})

	t.Run("error-missing-token", func(t *testing.T) {
		err := RunDecrypt(textCipher, nil, "pass", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token argument is required")
	})
}

func TestRunHashAdminToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunHashAdminToken(&fakeTokenHasher{}, &out, "admin-token"))
		assert.Contains(t, out.String(), `ADMIN_TOKEN_HASH="hashed:admin-token"`)
	})

	t.Run("success-argon2id", func(t *testing.T) {
		hasher := authService.NewTokenHasher()

		var out bytes.Buffer
		require.NoError(t, RunHashAdminToken(hasher, &out, "admin-token"))

		line := strings.TrimSpace(strings.Split(out.String(), "\n")[1])
		hash := strings.Trim(strings.TrimPrefix(line, "ADMIN_TOKEN_HASH="), `"`)
		assert.True(t, hasher.Compare("admin-token", hash))
		assert.False(t, hasher.Compare("other-token", hash))
	})

	t.Run("error-missing-token", func(t *testing.T) {
		err := RunHashAdminToken(&fakeTokenHasher{}, nil, "")
		require.Error(t, err)
	})
}

type fakeTokenHasher struct{}

func (fakeTokenHasher) Hash(token string) (string, error) { return "hashed:" + token, nil }

func (fakeTokenHasher) Compare(token, hash string) bool { return hash == "hashed:"+token }
