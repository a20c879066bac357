// Package domain defines admin authentication errors.
package domain

import (
	"github.com/allisson/formrelay/internal/errors"
)

var (
	// ErrAdminTokenMissing indicates the request carried no admin token.
	ErrAdminTokenMissing = errors.Wrap(errors.ErrUnauthorized, "admin token missing")

	// ErrAdminTokenInvalid indicates the admin token did not match.
	ErrAdminTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "admin token invalid")

	// ErrAdminDisabled indicates no admin token is configured, so admin endpoints
	// reject every request.
	ErrAdminDisabled = errors.Wrap(errors.ErrUnauthorized, "admin access disabled")
)
