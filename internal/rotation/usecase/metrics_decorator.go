package usecase

import (
	"context"
	"time"

	"github.com/allisson/formrelay/internal/metrics"
	rotationDomain "github.com/allisson/formrelay/internal/rotation/domain"
)

// rotationUseCaseWithMetrics decorates RotationUseCase with metrics instrumentation.
type rotationUseCaseWithMetrics struct {
	next    RotationUseCase
	metrics metrics.BusinessMetrics
}

// NewRotationUseCaseWithMetrics wraps a RotationUseCase with metrics recording.
func NewRotationUseCaseWithMetrics(useCase RotationUseCase, m metrics.BusinessMetrics) RotationUseCase {
	return &rotationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// RotateAuditLog records metrics for audit log rotation. A rotation that dropped
// lines is reported with the "partial" status, and the rotated and dropped line
// counts are added to the rotation line counter.
func (r *rotationUseCaseWithMetrics) RotateAuditLog(
	ctx context.Context,
	oldPassphrase, newPassphrase string,
) (*rotationDomain.Report, error) {
	start := time.Now()
	report, err := r.next.RotateAuditLog(ctx, oldPassphrase, newPassphrase)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case report != nil && report.HasLosses():
		status = "partial"
	}

	r.metrics.RecordOperation(ctx, "rotation", "rotate_audit_log", status)
	r.metrics.RecordDuration(ctx, "rotation", "rotate_audit_log", time.Since(start), status)
	if report != nil {
		r.metrics.RecordRotatedLines(ctx, string(rotationDomain.TargetAuditLog), report.Rotated, report.Failed)
	}

	return report, err
}

// RotateCredential records metrics for credential rotation.
func (r *rotationUseCaseWithMetrics) RotateCredential(
	ctx context.Context,
	oldPassphrase, newPassphrase string,
) (*rotationDomain.Report, error) {
	start := time.Now()
	report, err := r.next.RotateCredential(ctx, oldPassphrase, newPassphrase)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "rotation", "rotate_credential", status)
	r.metrics.RecordDuration(ctx, "rotation", "rotate_credential", time.Since(start), status)
	if report != nil {
		r.metrics.RecordRotatedLines(ctx, string(rotationDomain.TargetCredential), report.Rotated, report.Failed)
	}

	return report, err
}
