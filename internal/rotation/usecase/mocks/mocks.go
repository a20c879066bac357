// Package mocks provides mock implementations of the rotation use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	rotationDomain "github.com/allisson/formrelay/internal/rotation/domain"
)

// MockRotationUseCase is a mock implementation of RotationUseCase.
type MockRotationUseCase struct {
	mock.Mock
}

// RotateAuditLog mocks the RotateAuditLog method of RotationUseCase.
func (m *MockRotationUseCase) RotateAuditLog(
	ctx context.Context,
	oldPassphrase, newPassphrase string,
) (*rotationDomain.Report, error) {
	args := m.Called(ctx, oldPassphrase, newPassphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rotationDomain.Report), args.Error(1)
}

// RotateCredential mocks the RotateCredential method of RotationUseCase.
func (m *MockRotationUseCase) RotateCredential(
	ctx context.Context,
	oldPassphrase, newPassphrase string,
) (*rotationDomain.Report, error) {
	args := m.Called(ctx, oldPassphrase, newPassphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rotationDomain.Report), args.Error(1)
}
