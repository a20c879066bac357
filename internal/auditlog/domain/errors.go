package domain

import (
	"github.com/allisson/formrelay/internal/errors"
)

var (
	// ErrLogWriteFailed indicates a record could not be encrypted or appended.
	// Request handlers log it and carry on.
	ErrLogWriteFailed = errors.Wrap(errors.ErrUnavailable, "failed to write audit log")

	// ErrInvalidLimit indicates a read limit below one.
	ErrInvalidLimit = errors.Wrap(errors.ErrInvalidInput, "limit must be a positive integer")

	// ErrNilRecord indicates Append was called without a record.
	ErrNilRecord = errors.Wrap(errors.ErrInvalidInput, "record must not be nil")
)
