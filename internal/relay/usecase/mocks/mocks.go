// Package mocks provides mock implementations of the relay interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

// MockRelayUseCase is a mock implementation of RelayUseCase.
type MockRelayUseCase struct {
	mock.Mock
}

// Submit mocks the Submit method of RelayUseCase.
func (m *MockRelayUseCase) Submit(
	ctx context.Context,
	requestID string,
	submission *relayDomain.Submission,
) (*relayDomain.SubmitResult, error) {
	args := m.Called(ctx, requestID, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*relayDomain.SubmitResult), args.Error(1)
}

// MockFormDeliveryClient is a mock implementation of FormDeliveryClient.
type MockFormDeliveryClient struct {
	mock.Mock
}

// Deliver mocks the Deliver method of FormDeliveryClient.
func (m *MockFormDeliveryClient) Deliver(
	ctx context.Context,
	accessKey string,
	submission *relayDomain.Submission,
) (*relayDomain.DeliveryResult, error) {
	args := m.Called(ctx, accessKey, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*relayDomain.DeliveryResult), args.Error(1)
}
