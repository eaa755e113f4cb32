package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

const namespace = "jobboard"

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"method", "path", "status"},
	)
	applicationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "applications_total", Help: "Job applications by resulting status"},
		[]string{"status"},
	)
	jobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "jobs_total", Help: "Job postings by operation"},
		[]string{"op"},
	)
	digestRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "digest_runs_total", Help: "Scheduled digest runs by outcome"},
		[]string{"outcome"},
	)
	activeJobs = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "active_jobs", Help: "Active job postings seen by the last digest"},
	)
)

func init() {
	prometheus.MustRegister(requestDuration, requestTotal, applicationsTotal, jobsTotal, digestRuns, activeJobs)
}

// MetricsMiddleware пишет длительность и количество HTTP-запросов
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		dur := time.Since(start).Seconds()

		observer := requestDuration.WithLabelValues(c.Request.Method, path, status)
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			if eo, ok := observer.(prometheus.ExemplarObserver); ok {
				eo.ObserveWithExemplar(dur, prometheus.Labels{"trace_id": sc.TraceID().String()})
			} else {
				observer.Observe(dur)
			}
		} else {
			observer.Observe(dur)
		}
		requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordApplication(status string) {
	applicationsTotal.WithLabelValues(status).Inc()
}

// RecordJob: op - created, updated или deleted
func RecordJob(op string) {
	jobsTotal.WithLabelValues(op).Inc()
}

func RecordDigest(err error, active int64) {
	if err != nil {
		digestRuns.WithLabelValues("error").Inc()
		return
	}
	digestRuns.WithLabelValues("ok").Inc()
	activeJobs.Set(float64(active))
}
