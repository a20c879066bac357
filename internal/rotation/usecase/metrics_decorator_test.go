package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	metricsMocks "github.com/allisson/formrelay/internal/metrics/mocks"
	rotationDomain "github.com/allisson/formrelay/internal/rotation/domain"
	usecaseMocks "github.com/allisson/formrelay/internal/rotation/usecase/mocks"
)

func TestRotationUseCaseWithMetrics_RotateAuditLog(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		report         *rotationDomain.Report
		err            error
		expectedStatus string
	}{
		{name: "success", report: &rotationDomain.Report{Rotated: 3}, expectedStatus: "success"},
		{name: "partial", report: &rotationDomain.Report{Rotated: 2, Failed: 1}, expectedStatus: "partial"},
		{name: "error", err: errors.New("boom"), expectedStatus: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNext := &usecaseMocks.MockRotationUseCase{}
			mockMetrics := &metricsMocks.MockBusinessMetrics{}
			uc := NewRotationUseCaseWithMetrics(mockNext, mockMetrics)

			if tt.report != nil {
				mockNext.On("RotateAuditLog", ctx, "old", "new").Return(tt.report, nil).Once()
			} else {
				mockNext.On("RotateAuditLog", ctx, "old", "new").Return(nil, tt.err).Once()
			}
			mockMetrics.On("RecordOperation", ctx, "rotation", "rotate_audit_log", tt.expectedStatus).Return().Once()
			mockMetrics.On("RecordDuration", ctx, "rotation", "rotate_audit_log", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Return().
				Once()
			if tt.report != nil {
				mockMetrics.On("RecordRotatedLines", ctx, "audit_log", tt.report.Rotated, tt.report.Failed).Return().Once()
			}

			report, err := uc.RotateAuditLog(ctx, "old", "new")

			assert.Equal(t, tt.report, report)
			assert.Equal(t, tt.err, err)
			mockNext.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
			if tt.report == nil {
				mockMetrics.AssertNotCalled(t, "RecordRotatedLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRotationUseCaseWithMetrics_RotateCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockRotationUseCase{}
		mockMetrics := &metricsMocks.MockBusinessMetrics{}
		uc := NewRotationUseCaseWithMetrics(mockNext, mockMetrics)
		expected := &rotationDomain.Report{Target: rotationDomain.TargetCredential, Rotated: 1}

		mockNext.On("RotateCredential", ctx, "old", "new").Return(expected, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "rotation", "rotate_credential", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "rotation", "rotate_credential", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()
		mockMetrics.On("RecordRotatedLines", ctx, "credential", 1, 0).Return().Once()

		report, err := uc.RotateCredential(ctx, "old", "new")

		assert.NoError(t, err)
		assert.Equal(t, expected, report)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockRotationUseCase{}
		mockMetrics := &metricsMocks.MockBusinessMetrics{}
		uc := NewRotationUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("RotateCredential", ctx, "old", "new").Return(nil, rotationDomain.ErrRotationAborted).Once()
		mockMetrics.On("RecordOperation", ctx, "rotation", "rotate_credential", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "rotation", "rotate_credential", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := uc.RotateCredential(ctx, "old", "new")

		assert.ErrorIs(t, err, rotationDomain.ErrRotationAborted)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
