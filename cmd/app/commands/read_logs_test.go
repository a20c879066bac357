package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	auditlogMocks "github.com/allisson/formrelay/internal/auditlog/usecase/mocks"
)

func sampleEntries() []auditlogDomain.Entry {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []auditlogDomain.Entry{
		{Record: auditlogDomain.NewRecord(auditlogDomain.TypeSuccess, now, "req-1", &auditlogDomain.Submitter{
			Name:    "Jane",
			Email:   "jane@example.com",
			Service: "roofing",
		})},
		{Failure: auditlogDomain.FailureDecrypt},
		{Failure: auditlogDomain.FailureParse, Raw: "not json"},
	}
}

func TestRunReadLogs(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("success-text", func(t *testing.T) {
		mockUseCase := &auditlogMocks.MockAuditLogUseCase{}
		mockUseCase.On("ReadAll", ctx, "pass", 100).Return(sampleEntries(), nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunReadLogs(ctx, mockUseCase, logger, &out, "pass", 100, FormatText))
		assert.Contains(t, out.String(), "Decrypted log entries (3)")
		assert.Contains(t, out.String(), "#1: [2025-03-01T12:00:00Z] success Jane <jane@example.com> service=roofing")
		assert.Contains(t, out.String(), "#2: [decrypt failed]")
		assert.Contains(t, out.String(), "#3: not json")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("success-json", func(t *testing.T) {
		mockUseCase := &auditlogMocks.MockAuditLogUseCase{}
		mockUseCase.On("ReadAll", ctx, "pass", 10).Return(sampleEntries(), nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunReadLogs(ctx, mockUseCase, logger, &out, "pass", 10, FormatJSON))

		var result []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Len(t, result, 3)
		assert.Equal(t, "success", result[0]["type"])
		assert.Equal(t, "decrypt_failed", result[1]["error"])
		assert.Equal(t, "raw", result[2]["type"])
	})

	t.Run("empty-log", func(t *testing.T) {
		mockUseCase := &auditlogMocks.MockAuditLogUseCase{}
		mockUseCase.On("ReadAll", ctx, "pass", 100).Return([]auditlogDomain.Entry{}, nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunReadLogs(ctx, mockUseCase, logger, &out, "pass", 100, FormatText))
		assert.Equal(t, "No log entries found.\n", out.String())
	})

	t.Run("empty-log-json", func(t *testing.T) {
		mockUseCase := &auditlogMocks.MockAuditLogUseCase{}
		mockUseCase.On("ReadAll", ctx, "pass", 100).Return(nil, nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunReadLogs(ctx, mockUseCase, logger, &out, "pass", 100, FormatJSON))
		assert.JSONEq(t, `[]`, out.String())
	})

	t.Run("error-invalid-limit", func(t *testing.T) {
		mockUseCase := &auditlogMocks.MockAuditLogUseCase{}
		mockUseCase.On("ReadAll", ctx, "pass", 0).Return(nil, auditlogDomain.ErrInvalidLimit).Once()

		err := RunReadLogs(ctx, mockUseCase, logger, &bytes.Buffer{}, "pass", 0, FormatText)
		assert.ErrorIs(t, err, auditlogDomain.ErrInvalidLimit)
	})

	t.Run("error-invalid-format", func(t *testing.T) {
		err := RunReadLogs(ctx, nil, logger, nil, "pass", 100, "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}
