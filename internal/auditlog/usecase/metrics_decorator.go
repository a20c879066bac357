package usecase

import (
	"context"
	"time"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	"github.com/allisson/formrelay/internal/metrics"
)

// auditLogUseCaseWithMetrics decorates AuditLogUseCase with metrics instrumentation.
type auditLogUseCaseWithMetrics struct {
	next    AuditLogUseCase
	metrics metrics.BusinessMetrics
}

// NewAuditLogUseCaseWithMetrics wraps an AuditLogUseCase with metrics recording.
func NewAuditLogUseCaseWithMetrics(useCase AuditLogUseCase, m metrics.BusinessMetrics) AuditLogUseCase {
	return &auditLogUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Append records metrics for audit log append operations. Failed appends are also
// counted by record type, since the relay never surfaces them to the submitter.
func (a *auditLogUseCaseWithMetrics) Append(
	ctx context.Context,
	record *auditlogDomain.Record,
	passphrase string,
) error {
	start := time.Now()
	err := a.next.Append(ctx, record, passphrase)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auditlog", "auditlog_append", status)
	a.metrics.RecordDuration(ctx, "auditlog", "auditlog_append", time.Since(start), status)
	if err != nil {
		recordType := "unknown"
		if record != nil {
			recordType = string(record.Type)
		}
		a.metrics.RecordAuditLogWriteFailure(ctx, recordType)
	}

	return err
}

// ReadAll records metrics for audit log read operations, including how many of the
// returned entries were placeholders for unreadable lines.
func (a *auditLogUseCaseWithMetrics) ReadAll(
	ctx context.Context,
	passphrase string,
	limit int,
) ([]auditlogDomain.Entry, error) {
	start := time.Now()
	entries, err := a.next.ReadAll(ctx, passphrase, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auditlog", "auditlog_read", status)
	a.metrics.RecordDuration(ctx, "auditlog", "auditlog_read", time.Since(start), status)

	failures := map[string]int{}
	for _, entry := range entries {
		if entry.Record == nil {
			failures[entry.Failure]++
		}
	}
	for failure, count := range failures {
		a.metrics.RecordUnreadableLines(ctx, failure, count)
	}

	return entries, err
}
