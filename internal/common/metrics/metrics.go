// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of requests sent to the marketplace API",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of marketplace API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StoreTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_transitions_total",
			Help: "Total number of state container status transitions",
		},
		[]string{"container", "status"},
	)

	ComposerVisibleJobs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "composer_visible_jobs",
			Help: "Number of jobs left visible by the last filter composition",
		},
		[]string{"board"},
	)
)
