package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// AutoCompletedRequirements 新建路线图时被跨校自动勾选的需求条数
	AutoCompletedRequirements = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roadmap_autocompleted_requirements_total",
			Help: "Requirements pre-marked complete by cross-university auto-completion",
		},
	)

	// RejectedToggles 因前置未满足被拒绝的勾选次数
	RejectedToggles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roadmap_rejected_toggles_total",
			Help: "Requirement toggles rejected by dependency gating",
		},
	)

	// SyncFailures 远端同步写失败次数（本地写不受影响）
	SyncFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roadmap_sync_failures_total",
			Help: "Fire-and-forget remote persistence failures",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AutoCompletedRequirements)
	prometheus.MustRegister(RejectedToggles)
	prometheus.MustRegister(SyncFailures)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
