// Package http provides the admin HTTP handlers for reading and exercising the audit log.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	auditlogUseCase "github.com/allisson/formrelay/internal/auditlog/usecase"
	"github.com/allisson/formrelay/internal/httputil"
)

// ListLogsResponse is the body of GET /api/admin/logs.
type ListLogsResponse struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Entries []auditlogDomain.Entry `json:"entries"`
}

// AuditLogHandler handles the admin audit log endpoints.
// Both routes must sit behind the admin token middleware.
type AuditLogHandler struct {
	auditLogUseCase auditlogUseCase.AuditLogUseCase
	passphrase      string
	logger          *slog.Logger
}

// NewAuditLogHandler creates a new audit log handler.
func NewAuditLogHandler(
	auditLogUseCase auditlogUseCase.AuditLogUseCase,
	passphrase string,
	logger *slog.Logger,
) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUseCase: auditLogUseCase,
		passphrase:      passphrase,
		logger:          logger,
	}
}

// ListHandler returns the decrypted tail of the audit log.
// GET /api/admin/logs?limit=N - limit defaults to 100 and is capped at 1000.
func (h *AuditLogHandler) ListHandler(c *gin.Context) {
	limit := httputil.ParseLimit(c, auditlogDomain.DefaultReadLimit, auditlogDomain.MaxReadLimit)

	entries, err := h.auditLogUseCase.ReadAll(c.Request.Context(), h.passphrase, limit)
	if err != nil {
		httputil.HandleErrorMessageGin(c, http.StatusInternalServerError, "Server error", err, h.logger)
		return
	}

	c.JSON(http.StatusOK, ListLogsResponse{
		Success: true,
		Count:   len(entries),
		Entries: entries,
	})
}

// AppendTestHandler appends a fixed sample record.
// POST /api/admin/logs-test
func (h *AuditLogHandler) AppendTestHandler(c *gin.Context) {
	record := auditlogDomain.NewRecord(auditlogDomain.TypeTest, time.Now(), requestid.Get(c), &auditlogDomain.Submitter{
		Name:    "Sample Admin Log",
		Email:   "admin@test.local",
		Phone:   "0000000000",
		Service: "construction",
		Message: "This is a test log entry.",
	})

	if err := h.auditLogUseCase.Append(c.Request.Context(), record, h.passphrase); err != nil {
		httputil.HandleErrorMessageGin(c, http.StatusInternalServerError, "Server error", err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
