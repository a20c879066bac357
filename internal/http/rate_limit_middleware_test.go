package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, slog.Default()))
	router.POST("/api/submit-form", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func submitFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsBurst(t *testing.T) {
	router := newRateLimitedRouter(t, 1.0, 5)

	for i := 0; i < 5; i++ {
		w := submitFrom(router, "192.168.1.100:12345")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_BlocksRequestsExceedingLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 1.0, 1)

	w := submitFrom(router, "192.168.1.100:12345")
	assert.Equal(t, http.StatusOK, w.Code)

	w = submitFrom(router, "192.168.1.100:12346")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t,
		`{"success":false,"message":"Too many requests. Please try again later."}`,
		w.Body.String(),
	)
}

func TestRateLimitMiddleware_IndependentLimitsPerIP(t *testing.T) {
	router := newRateLimitedRouter(t, 1.0, 1)

	assert.Equal(t, http.StatusOK, submitFrom(router, "192.168.1.100:12345").Code)
	assert.Equal(t, http.StatusTooManyRequests, submitFrom(router, "192.168.1.100:12345").Code)
	assert.Equal(t, http.StatusOK, submitFrom(router, "192.168.1.101:12345").Code)
}

func TestRateLimiterStore_RemoveStale(t *testing.T) {
	store := &rateLimiterStore{rps: 10.0, burst: 20}

	store.getLimiter("192.168.1.100")
	store.getLimiter("192.168.1.101")

	val, ok := store.limiters.Load("192.168.1.100")
	assert.True(t, ok)
	entry := val.(*rateLimiterEntry)
	entry.mu.Lock()
	entry.lastAccess = time.Now().Add(-2 * time.Hour)
	entry.mu.Unlock()

	store.removeStale(time.Now().Add(-rateLimitStaleAfter))

	_, ok = store.limiters.Load("192.168.1.100")
	assert.False(t, ok)
	_, ok = store.limiters.Load("192.168.1.101")
	assert.True(t, ok)
}

func TestRateLimiterStore_ReusesLimiter(t *testing.T) {
	store := &rateLimiterStore{rps: 10.0, burst: 20}

	assert.Same(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.1"))
	assert.NotSame(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.2"))
}

func TestRateLimitMiddleware_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	_ = RateLimitMiddleware(ctx, 1.0, 1, slog.Default())
	cancel()
}
