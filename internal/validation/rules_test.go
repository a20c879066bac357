package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/formrelay/internal/errors"
)

func TestPassphraseStrength(t *testing.T) {
	rule := PassphraseStrength{
		MinLength:      12,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	tests := []struct {
		name       string
		passphrase string
		shouldErr  bool
		errMsg     string
	}{
		{name: "valid passphrase", passphrase: "Correct-Horse-42", shouldErr: false},
		{name: "too short", passphrase: "Short1!", shouldErr: true, errMsg: "at least 12 characters"},
		{name: "missing uppercase", passphrase: "correct-horse-42", shouldErr: true, errMsg: "uppercase letter"},
		{name: "missing lowercase", passphrase: "CORRECT-HORSE-42", shouldErr: true, errMsg: "lowercase letter"},
		{name: "missing number", passphrase: "Correct-Horse-Battery", shouldErr: true, errMsg: "number"},
		{name: "missing special char", passphrase: "CorrectHorse42", shouldErr: true, errMsg: "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.passphrase)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassphraseStrength_LengthOnly(t *testing.T) {
	rule := PassphraseStrength{MinLength: 16}

	assert.NoError(t, rule.Validate("all lowercase words here"))
	assert.Error(t, rule.Validate("short"))
	assert.Error(t, rule.Validate(42))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NotBlank))
	assert.NoError(t, validation.Validate("", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.Error(t, validation.Validate("\t\n", NotBlank))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@mail.example.co", true},
		{"", true},
		{"jane@example", false},
		{"jane example@x.com", false},
		{"@example.com", false},
		{"jane@@example.com", false},
		{"not-an-email", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := validation.Validate(tt.email, Email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestKMSCiphertext(t *testing.T) {
	assert.NoError(t, validation.Validate("aGVsbG8=", KMSCiphertext))
	assert.NoError(t, validation.Validate("", KMSCiphertext))
	assert.Error(t, validation.Validate("%%%", KMSCiphertext))
	assert.Error(t, validation.Validate("plain passphrase", KMSCiphertext))
	assert.Error(t, validation.Validate(42, KMSCiphertext))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(validation.NewError("code", "bad value"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "bad value")
}
