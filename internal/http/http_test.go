package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditlogHTTP "github.com/allisson/formrelay/internal/auditlog/http"
	auditlogMocks "github.com/allisson/formrelay/internal/auditlog/usecase/mocks"
	authService "github.com/allisson/formrelay/internal/auth/service"
	"github.com/allisson/formrelay/internal/metrics"
	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
	relayHTTP "github.com/allisson/formrelay/internal/relay/http"
	relayMocks "github.com/allisson/formrelay/internal/relay/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	server   *Server
	relayUC  *relayMocks.MockRelayUseCase
	auditUC  *auditlogMocks.MockAuditLogUseCase
	provider *metrics.Provider
}

func newTestServer(t *testing.T, cfg RouterConfig) *testServer {
	t.Helper()
	logger := discardLogger()

	provider, err := metrics.NewProvider("formrelay_test", "test")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	relayUC := &relayMocks.MockRelayUseCase{}
	auditUC := &auditlogMocks.MockAuditLogUseCase{}
	verifier := authService.NewAdminTokenVerifier("admin-token", "", authService.NewTokenHasher())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := NewServer("localhost", 0, logger)
	server.SetupRouter(
		ctx,
		cfg,
		relayHTTP.NewRelayHandler(relayUC, logger),
		auditlogHTTP.NewAuditLogHandler(auditUC, "s3cret", logger),
		verifier,
		provider,
	)

	return &testServer{server: server, relayUC: relayUC, auditUC: auditUC, provider: provider}
}

func defaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORSEnabled:         true,
		CORSAllowOrigins:    "http://localhost:8000",
		RateLimitEnabled:    true,
		RateLimitRequestsPS: 1,
		RateLimitBurst:      5,
		MetricsNamespace:    "formrelay_test",
	}
}

func TestRouter_HealthEndpoint(t *testing.T) {
	ts := newTestServer(t, defaultRouterConfig())

	w := httptest.NewRecorder()
	ts.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Server is running", response["status"])
	_, err := time.Parse(time.RFC3339Nano, response["timestamp"])
	assert.NoError(t, err)
}

func TestRouter_NotFoundEndpoint(t *testing.T) {
	ts := newTestServer(t, defaultRouterConfig())

	w := httptest.NewRecorder()
	ts.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Endpoint not found"}`, w.Body.String())
}

func TestRouter_SubmitForm(t *testing.T) {
	ts := newTestServer(t, defaultRouterConfig())
	ts.relayUC.On("Submit", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&relayDomain.SubmitResult{WhatsappNumber: "N/A yet"}, nil).
		Once()

	body := `{"name":"Jane","email":"jane@example.com","phone":"1","service":"x","message":"y"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:8000")
	ts.server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "http://localhost:8000", w.Header().Get("Access-Control-Allow-Origin"))
	ts.relayUC.AssertExpectations(t)
}

func TestRouter_SubmitFormRateLimited(t *testing.T) {
	cfg := defaultRouterConfig()
	cfg.RateLimitBurst = 1
	ts := newTestServer(t, cfg)

	for i, expected := range []int{http.StatusBadRequest, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/submit-form", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		ts.server.GetHandler().ServeHTTP(w, req)
		assert.Equal(t, expected, w.Code, "request %d", i)
	}
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	ts := newTestServer(t, defaultRouterConfig())

	w := httptest.NewRecorder()
	ts.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.auditUC.On("ReadAll", mock.Anything, "s3cret", 100).Return(nil, nil).Once()

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil)
	req.Header.Set("X-Admin-Token", "admin-token")
	ts.server.GetHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	ts.auditUC.AssertExpectations(t)
}

func TestRouter_RecordsHTTPMetrics(t *testing.T) {
	ts := newTestServer(t, defaultRouterConfig())

	w := httptest.NewRecorder()
	ts.server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	ts.provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "formrelay_test_http_requests_total")
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RecoveryMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `"path":"/test"`)
	assert.Contains(t, buf.String(), w.Header().Get("X-Request-Id"))
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := NewServer("localhost", 0, discardLogger())
	assert.Error(t, server.Start(context.Background()))
}

func TestServer_ShutdownGracefully(t *testing.T) {
	ts := newTestServer(t, defaultRouterConfig())

	errChan := make(chan error, 1)
	go func() {
		errChan <- ts.server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	assert.NoError(t, ts.server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app", "test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	metricsServer := NewMetricsServer("localhost", 8081, logger, provider)
	handler := metricsServer.GetHandler()

	t.Run("Metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("ScrapesAreNotLogged", func(t *testing.T) {
		assert.NotContains(t, buf.String(), `"path":"/metrics"`)
	})

	t.Run("UnknownRouteIsLogged", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/submit-form", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Endpoint not found"}`, w.Body.String())
		assert.Contains(t, buf.String(), "metrics server request failed")
		assert.Contains(t, buf.String(), `"status":404`)
	})
}
