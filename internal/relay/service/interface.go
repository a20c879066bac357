// Package service provides the outbound form delivery client.
package service

import (
	"context"

	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

// FormDeliveryClient submits contact forms to the third-party delivery API.
type FormDeliveryClient interface {
	// Deliver posts submission authenticated by accessKey. A transport failure or an
	// unreadable response returns an error; a readable rejection returns a result
	// with Success false.
	Deliver(ctx context.Context, accessKey string, submission *relayDomain.Submission) (*relayDomain.DeliveryResult, error)
}
