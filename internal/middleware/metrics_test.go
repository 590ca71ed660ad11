package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"mkn-console/internal/metrics"
)

func metricsRouter(method, path string, status int) *gin.Engine {
	router := gin.New()
	router.Use(Metrics())
	router.Handle(method, path, func(c *gin.Context) {
		c.JSON(status, gin.H{"status": http.StatusText(status)})
	})
	return router
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("counts requests and restores in-flight gauge", func(t *testing.T) {
		router := metricsRouter(http.MethodGet, "/posts", http.StatusOK)

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200"))
		inFlightBefore := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before+1,
			testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200")))
		assert.Equal(t, inFlightBefore, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("labels by status code", func(t *testing.T) {
		router := metricsRouter(http.MethodGet, "/posts/:id", http.StatusNotFound)

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts/:id", "404"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, before+1,
			testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts/:id", "404")))
	})

	t.Run("uses the route template for parameterized paths", func(t *testing.T) {
		router := metricsRouter(http.MethodPut, "/companies/:id", http.StatusOK)

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("PUT", "/companies/:id", "200"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/companies/abc-123", nil))

		assert.Equal(t, before+1,
			testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("PUT", "/companies/:id", "200")))
	})

	t.Run("skips the scrape endpoint", func(t *testing.T) {
		router := metricsRouter(http.MethodGet, "/metrics", http.StatusOK)

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before,
			testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
	})
}
