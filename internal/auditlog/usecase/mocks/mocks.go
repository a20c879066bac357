// Package mocks provides mock implementations of the audit log use case interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
)

// MockAuditLogUseCase is a mock implementation of AuditLogUseCase.
type MockAuditLogUseCase struct {
	mock.Mock
}

// Append mocks the Append method of AuditLogUseCase.
func (m *MockAuditLogUseCase) Append(ctx context.Context, record *auditlogDomain.Record, passphrase string) error {
	args := m.Called(ctx, record, passphrase)
	return args.Error(0)
}

// ReadAll mocks the ReadAll method of AuditLogUseCase.
func (m *MockAuditLogUseCase) ReadAll(
	ctx context.Context,
	passphrase string,
	limit int,
) ([]auditlogDomain.Entry, error) {
	args := m.Called(ctx, passphrase, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]auditlogDomain.Entry), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

// Path mocks the Path method of AuditLogRepository.
func (m *MockAuditLogRepository) Path() string {
	args := m.Called()
	return args.String(0)
}

// Append mocks the Append method of AuditLogRepository.
func (m *MockAuditLogRepository) Append(ctx context.Context, line string) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

// ReadLines mocks the ReadLines method of AuditLogRepository.
func (m *MockAuditLogRepository) ReadLines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Exists mocks the Exists method of AuditLogRepository.
func (m *MockAuditLogRepository) Exists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// Backup mocks the Backup method of AuditLogRepository.
func (m *MockAuditLogRepository) Backup(ctx context.Context, now time.Time) (string, error) {
	args := m.Called(ctx, now)
	return args.String(0), args.Error(1)
}

// Rewrite mocks the Rewrite method of AuditLogRepository.
func (m *MockAuditLogRepository) Rewrite(ctx context.Context, lines []string) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}
