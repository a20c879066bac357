package usecase

import (
	"context"
	"time"

	"github.com/allisson/formrelay/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Reveal records metrics for credential reveal operations.
func (c *credentialUseCaseWithMetrics) Reveal(ctx context.Context, passphrase string) (string, error) {
	start := time.Now()
	secret, err := c.next.Reveal(ctx, passphrase)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential", "credential_reveal", status)
	c.metrics.RecordDuration(ctx, "credential", "credential_reveal", time.Since(start), status)

	return secret, err
}

// Store records metrics for credential store operations.
func (c *credentialUseCaseWithMetrics) Store(ctx context.Context, passphrase, secret string) (string, error) {
	start := time.Now()
	token, err := c.next.Store(ctx, passphrase, secret)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential", "credential_store", status)
	c.metrics.RecordDuration(ctx, "credential", "credential_store", time.Since(start), status)

	return token, err
}
