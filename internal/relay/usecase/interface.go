// Package usecase relays contact form submissions and records every outcome in the
// encrypted audit log.
package usecase

import (
	"context"

	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

// RelayUseCase defines the interface for relaying contact forms.
type RelayUseCase interface {
	// Submit reveals the API credential, delivers submission and appends an audit
	// record.
	//
	// Errors:
	//   - credentialDomain.ErrConfiguration: credential unavailable; nothing was sent or logged
	//   - relayDomain.ErrDeliveryRejected: the API refused the submission; an error record was logged
	//   - relayDomain.ErrDeliveryFailed: the API was unreachable; an error record was logged
	//
	// Audit log write failures are logged and never returned.
	Submit(ctx context.Context, requestID string, submission *relayDomain.Submission) (*relayDomain.SubmitResult, error)
}
