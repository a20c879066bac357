// Package http provides the public contact form endpoint.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	credentialDomain "github.com/allisson/formrelay/internal/credential/domain"
	apperrors "github.com/allisson/formrelay/internal/errors"
	"github.com/allisson/formrelay/internal/httputil"
	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
	"github.com/allisson/formrelay/internal/relay/http/dto"
	relayUseCase "github.com/allisson/formrelay/internal/relay/usecase"
)

// Client-facing messages. Causes are only ever logged.
const (
	messageMissingFields = "Please fill in all required fields"
	messageInvalidEmail  = "Invalid email address"
	messageConfiguration = "Server configuration error"
	messageRejected      = "Error submitting form. Please try again."
	messageServerError   = "Server error. Please try again later."
)

// RelayHandler handles contact form submissions.
type RelayHandler struct {
	relayUseCase relayUseCase.RelayUseCase
	logger       *slog.Logger
}

// NewRelayHandler creates a new relay handler.
func NewRelayHandler(relayUseCase relayUseCase.RelayUseCase, logger *slog.Logger) *RelayHandler {
	return &RelayHandler{
		relayUseCase: relayUseCase,
		logger:       logger,
	}
}

// SubmitFormHandler validates and relays a contact form.
// POST /api/submit-form - accepts JSON or form-encoded bodies.
func (h *RelayHandler) SubmitFormHandler(c *gin.Context) {
	var req dto.SubmitFormRequest

	// An unreadable body is treated as an empty form.
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Debug("failed to bind submit form request", slog.Any("error", err))
		req = dto.SubmitFormRequest{}
	}

	if err := req.Validate(); err != nil {
		message := messageMissingFields
		if apperrors.Is(err, relayDomain.ErrInvalidEmail) {
			message = messageInvalidEmail
		}
		httputil.HandleBadRequestGin(c, message, h.logger)
		return
	}

	result, err := h.relayUseCase.Submit(c.Request.Context(), requestid.Get(c), req.ToSubmission())
	if err != nil {
		message := messageServerError
		switch {
		case apperrors.Is(err, credentialDomain.ErrConfiguration):
			message = messageConfiguration
		case apperrors.Is(err, relayDomain.ErrDeliveryRejected):
			message = messageRejected
		}
		httputil.HandleErrorMessageGin(c, http.StatusInternalServerError, message, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSubmitResultToResponse(result))
}
