// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditlogHTTP "github.com/allisson/formrelay/internal/auditlog/http"
	authHTTP "github.com/allisson/formrelay/internal/auth/http"
	authService "github.com/allisson/formrelay/internal/auth/service"
	"github.com/allisson/formrelay/internal/httputil"
	"github.com/allisson/formrelay/internal/metrics"
	relayHTTP "github.com/allisson/formrelay/internal/relay/http"
)

// RouterConfig holds the router options taken from configuration.
type RouterConfig struct {
	CORSEnabled         bool
	CORSAllowOrigins    string
	RateLimitEnabled    bool
	RateLimitRequestsPS float64
	RateLimitBurst      int
	MetricsNamespace    string
}

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with every route and middleware.
// The context bounds background goroutines started by middlewares.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg RouterConfig,
	relayHandler *relayHTTP.RelayHandler,
	auditLogHandler *auditlogHTTP.AuditLogHandler,
	adminVerifier authService.AdminTokenVerifier,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(RecoveryMiddleware(s.logger))
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.NoRoute(notFoundHandler)

	api := router.Group("/api")
	api.GET("/health", s.healthHandler)

	submit := []gin.HandlerFunc{}
	if cfg.RateLimitEnabled {
		submit = append(submit, RateLimitMiddleware(ctx, cfg.RateLimitRequestsPS, cfg.RateLimitBurst, s.logger))
	}
	submit = append(submit, relayHandler.SubmitFormHandler)
	api.POST("/submit-form", submit...)

	admin := api.Group("/admin")
	admin.Use(authHTTP.AdminTokenMiddleware(adminVerifier, s.logger))
	admin.GET("/logs", auditLogHandler.ListHandler)
	admin.POST("/logs-test", auditLogHandler.AppendTestHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// notFoundHandler answers unknown routes on both servers.
func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, httputil.NewErrorResponse("Endpoint not found"))
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
