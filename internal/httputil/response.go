// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/formrelay/internal/errors"
)

// ErrorResponse is the JSON body of every failed relay request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse with Success set to false.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
// Causes are logged but never written to the response body.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, apperrors.ErrUnavailable):
		statusCode = http.StatusInternalServerError
		message = "Server configuration error"

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found"

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = "Invalid request"

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Forbidden"

	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, NewErrorResponse(message))
}

// HandleBadRequestGin writes a 400 Bad Request response with message.
func HandleBadRequestGin(c *gin.Context, message string, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.String("message", message))
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse(message))
}

// HandleErrorMessageGin logs err and writes statusCode with a fixed client message.
func HandleErrorMessageGin(c *gin.Context, statusCode int, message string, err error, logger *slog.Logger) {
	if logger != nil && err != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, NewErrorResponse(message))
}
