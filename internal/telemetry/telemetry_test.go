package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/jobs/:id", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/abc", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	after := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/jobs/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestRecordApplication(t *testing.T) {
	before := testutil.ToFloat64(applicationsTotal.WithLabelValues("accepted"))
	RecordApplication("accepted")
	assert.Equal(t, before+1, testutil.ToFloat64(applicationsTotal.WithLabelValues("accepted")))
}

func TestRecordDigest(t *testing.T) {
	RecordDigest(nil, 7)
	assert.Equal(t, float64(7), testutil.ToFloat64(activeJobs))

	before := testutil.ToFloat64(digestRuns.WithLabelValues("error"))
	RecordDigest(errors.New("boom"), 100)
	assert.Equal(t, before+1, testutil.ToFloat64(digestRuns.WithLabelValues("error")))
	assert.Equal(t, float64(7), testutil.ToFloat64(activeJobs))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordJob("created")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobboard_jobs_total")
}

func TestInitTracing_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, enabled, err := InitTracing(context.Background(), TracingConfig{ServiceName: "test"})
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.NoError(t, shutdown(context.Background()))
}
