// Package mocks provides a testify mock of metrics.BusinessMetrics.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *MockBusinessMetrics) RecordAuditLogWriteFailure(ctx context.Context, recordType string) {
	m.Called(ctx, recordType)
}

func (m *MockBusinessMetrics) RecordUnreadableLines(ctx context.Context, failure string, count int) {
	m.Called(ctx, failure, count)
}

func (m *MockBusinessMetrics) RecordRotatedLines(ctx context.Context, target string, rotated, dropped int) {
	m.Called(ctx, target, rotated, dropped)
}
