// Package domain defines the credential store errors and file defaults.
package domain

import (
	"github.com/allisson/formrelay/internal/errors"
)

// DefaultFilePath is where the encrypted credential lives when not configured.
const DefaultFilePath = "config/keys.encrypted"

var (
	// ErrCredentialNotFound indicates the credential file does not exist.
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential file not found")

	// ErrConfiguration indicates the credential could not be made available: the
	// file is missing, the passphrase is empty or decryption failed. The HTTP layer
	// renders it as a generic server configuration error.
	ErrConfiguration = errors.Wrap(errors.ErrUnavailable, "server configuration error")
)
