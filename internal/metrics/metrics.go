package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency by route and method.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	RecordOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "record_operations_total", Help: "Record service operations by entity, operation and outcome."},
		[]string{"entity", "operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, RecordOperations)
}

// Handler records request count and latency for every route.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// ObserveOperation counts one record service call. outcome is "ok" or an
// error class such as "not_found".
func ObserveOperation(entity, operation, outcome string) {
	RecordOperations.WithLabelValues(entity, operation, outcome).Inc()
}

func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
