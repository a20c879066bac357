package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newInstrumentedRouter(provider *Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "relay_test"))
	router.POST("/api/submit-form", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.GET("/api/admin/logs", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
	})
	return router
}

func serve(router *gin.Engine, method, target string) {
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("Success_CountsByRoute", func(t *testing.T) {
		provider := newTestProvider(t, "relay_test")
		router := newInstrumentedRouter(provider)

		serve(router, http.MethodPost, "/api/submit-form")
		serve(router, http.MethodPost, "/api/submit-form")
		serve(router, http.MethodGet, "/api/admin/logs?token=secret")

		output := scrape(t, provider)
		assertMetricLine(t, output, `relay_test_http_requests_total`,
			`method="POST".*path="/api/submit-form".*status_code="200"`, `2`)
		assertMetricLine(t, output, `relay_test_http_requests_total`,
			`method="GET".*path="/api/admin/logs".*status_code="401"`, `1`)
		assert.NotContains(t, output, "secret")
	})

	t.Run("Success_UnmatchedRoutesShareOneLabel", func(t *testing.T) {
		provider := newTestProvider(t, "relay_test")
		router := newInstrumentedRouter(provider)

		serve(router, http.MethodGet, "/wp-login.php")
		serve(router, http.MethodGet, "/.env")

		output := scrape(t, provider)
		assertMetricLine(t, output, `relay_test_http_requests_total`,
			`path="unmatched".*status_code="404"`, `2`)
		assert.NotContains(t, output, "wp-login")
	})

	t.Run("Success_RecordsSizeAndInFlight", func(t *testing.T) {
		provider := newTestProvider(t, "relay_test")
		router := newInstrumentedRouter(provider)

		serve(router, http.MethodPost, "/api/submit-form")

		output := scrape(t, provider)
		assertMetricLine(t, output, `relay_test_http_response_size_bytes_count`,
			`path="/api/submit-form"`, `1`)
		assertMetricLine(t, output, `relay_test_http_request_duration_seconds_count`,
			`path="/api/submit-form"`, `1`)
		assertMetricLine(t, output, `relay_test_http_requests_in_flight`, ``, `0`)
	})
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/api/admin/logs", routeLabel("/api/admin/logs"))
	assert.Equal(t, UnmatchedRoute, routeLabel(""))
	assert.False(t, strings.Contains(routeLabel(""), "/"))
}
