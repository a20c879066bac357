package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Rotation line results used by RecordRotatedLines.
const (
	LineRotated = "rotated"
	LineDropped = "dropped"
)

// BusinessMetrics records relay, credential, audit log and rotation outcomes.
type BusinessMetrics interface {
	// RecordOperation counts one use case call.
	// Domains: "credential", "auditlog", "rotation", "relay".
	// Statuses: "success", "error", "rejected", "partial".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long one use case call took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordAuditLogWriteFailure counts a record that could not be appended. The
	// relay answers the submitter regardless, so this counter is the only signal.
	RecordAuditLogWriteFailure(ctx context.Context, recordType string)

	// RecordUnreadableLines counts log lines read back as placeholders, by failure kind.
	RecordUnreadableLines(ctx context.Context, failure string, count int)

	// RecordRotatedLines counts lines re-encrypted and lines dropped by one rotation.
	RecordRotatedLines(ctx context.Context, target string, rotated, dropped int)
}

type businessMetrics struct {
	operationCounter    metric.Int64Counter
	durationHisto       metric.Float64Histogram
	writeFailureCounter metric.Int64Counter
	unreadableCounter   metric.Int64Counter
	rotationLineCounter metric.Int64Counter
}

// NewBusinessMetrics creates the instruments on a meter named namespace; every
// metric name is prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)
	b := &businessMetrics{}

	var err error
	if b.operationCounter, err = meter.Int64Counter(
		namespace+"_operations_total",
		metric.WithDescription("Total number of use case operations"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	if b.durationHisto, err = meter.Float64Histogram(
		namespace+"_operation_duration_seconds",
		metric.WithDescription("Duration of use case operations in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	if b.writeFailureCounter, err = meter.Int64Counter(
		namespace+"_auditlog_write_failures_total",
		metric.WithDescription("Audit records that could not be appended to the log"),
		metric.WithUnit("{record}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create audit log write failure counter: %w", err)
	}

	if b.unreadableCounter, err = meter.Int64Counter(
		namespace+"_auditlog_unreadable_lines_total",
		metric.WithDescription("Audit log lines that could not be decrypted or parsed when read"),
		metric.WithUnit("{line}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create unreadable line counter: %w", err)
	}

	if b.rotationLineCounter, err = meter.Int64Counter(
		namespace+"_rotation_lines_total",
		metric.WithDescription("Lines processed by key rotation, by result"),
		metric.WithUnit("{line}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create rotation line counter: %w", err)
	}

	return b, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordAuditLogWriteFailure(ctx context.Context, recordType string) {
	b.writeFailureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("type", recordType)))
}

func (b *businessMetrics) RecordUnreadableLines(ctx context.Context, failure string, count int) {
	if count <= 0 {
		return
	}
	b.unreadableCounter.Add(ctx, int64(count), metric.WithAttributes(attribute.String("failure", failure)))
}

func (b *businessMetrics) RecordRotatedLines(ctx context.Context, target string, rotated, dropped int) {
	if rotated > 0 {
		b.rotationLineCounter.Add(ctx, int64(rotated), metric.WithAttributes(
			attribute.String("target", target),
			attribute.String("result", LineRotated),
		))
	}
	if dropped > 0 {
		b.rotationLineCounter.Add(ctx, int64(dropped), metric.WithAttributes(
			attribute.String("target", target),
			attribute.String("result", LineDropped),
		))
	}
}

// NoOpBusinessMetrics discards everything. Used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (n *NoOpBusinessMetrics) RecordAuditLogWriteFailure(context.Context, string) {}

func (n *NoOpBusinessMetrics) RecordUnreadableLines(context.Context, string, int) {}

func (n *NoOpBusinessMetrics) RecordRotatedLines(context.Context, string, int, int) {}
