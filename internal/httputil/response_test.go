package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/formrelay/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "unavailable hides cause",
			err:          fmt.Errorf("%w: open config/keys.encrypted", apperrors.ErrUnavailable),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"message":"Server configuration error"}`,
		},
		{
			name:         "not found",
			err:          apperrors.Wrap(apperrors.ErrNotFound, "missing"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"message":"The requested resource was not found"}`,
		},
		{
			name:         "invalid input",
			err:          apperrors.Wrap(apperrors.ErrInvalidInput, "bad"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"message":"Invalid request"}`,
		},
		{
			name:         "unauthorized",
			err:          apperrors.ErrUnauthorized,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"success":false,"message":"Unauthorized"}`,
		},
		{
			name:         "forbidden",
			err:          apperrors.ErrForbidden,
			expectedCode: http.StatusForbidden,
			expectedBody: `{"success":false,"message":"Forbidden"}`,
		},
		{
			name:         "unknown",
			err:          errors.New("database exploded"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, nil)

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, "Invalid email address", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid email address"}`, w.Body.String())
}

func TestHandleErrorMessageGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorMessageGin(c, http.StatusInternalServerError, "Server error. Please try again later.", errors.New("dial tcp"), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server error. Please try again later."}`, w.Body.String())
}
