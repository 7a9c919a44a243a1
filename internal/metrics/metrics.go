package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RequestsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "jobboard_http_requests_total",
		Help: "HTTP requests handled, by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "jobboard_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

var ErrorsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "jobboard_errors_total",
		Help: "Errors logged, by error type.",
	},
	[]string{"error_type"},
)

func Handler() http.Handler {
	return promhttp.Handler()
}
