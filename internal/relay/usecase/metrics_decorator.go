package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/formrelay/internal/errors"
	"github.com/allisson/formrelay/internal/metrics"
	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

// relayUseCaseWithMetrics decorates RelayUseCase with metrics instrumentation.
type relayUseCaseWithMetrics struct {
	next    RelayUseCase
	metrics metrics.BusinessMetrics
}

// NewRelayUseCaseWithMetrics wraps a RelayUseCase with metrics recording.
func NewRelayUseCaseWithMetrics(useCase RelayUseCase, m metrics.BusinessMetrics) RelayUseCase {
	return &relayUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Submit records metrics for form submissions. Rejections by the delivery API are
// counted separately from other errors.
func (r *relayUseCaseWithMetrics) Submit(
	ctx context.Context,
	requestID string,
	submission *relayDomain.Submission,
) (*relayDomain.SubmitResult, error) {
	start := time.Now()
	result, err := r.next.Submit(ctx, requestID, submission)

	status := "success"
	switch {
	case apperrors.Is(err, relayDomain.ErrDeliveryRejected):
		status = "rejected"
	case err != nil:
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "relay", "relay_submit", status)
	r.metrics.RecordDuration(ctx, "relay", "relay_submit", time.Since(start), status)

	return result, err
}
