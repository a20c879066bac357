// Package mocks provides mock implementations of the credential use case interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCredentialUseCase is a mock implementation of CredentialUseCase.
type MockCredentialUseCase struct {
	mock.Mock
}

// Reveal mocks the Reveal method of CredentialUseCase.
func (m *MockCredentialUseCase) Reveal(ctx context.Context, passphrase string) (string, error) {
	args := m.Called(ctx, passphrase)
	return args.String(0), args.Error(1)
}

// Store mocks the Store method of CredentialUseCase.
func (m *MockCredentialUseCase) Store(ctx context.Context, passphrase, secret string) (string, error) {
	args := m.Called(ctx, passphrase, secret)
	return args.String(0), args.Error(1)
}

// MockCredentialRepository is a mock implementation of CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

// Path mocks the Path method of CredentialRepository.
func (m *MockCredentialRepository) Path() string {
	args := m.Called()
	return args.String(0)
}

// Read mocks the Read method of CredentialRepository.
func (m *MockCredentialRepository) Read(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Write mocks the Write method of CredentialRepository.
func (m *MockCredentialRepository) Write(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Backup mocks the Backup method of CredentialRepository.
func (m *MockCredentialRepository) Backup(ctx context.Context, now time.Time) (string, error) {
	args := m.Called(ctx, now)
	return args.String(0), args.Error(1)
}
