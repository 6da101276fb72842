package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artbrowser_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artbrowser_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	CatalogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artbrowser_catalog_requests_total",
		Help: "Total number of catalog API calls by operation and outcome",
	}, []string{"operation", "outcome"})

	CatalogRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artbrowser_catalog_request_duration_seconds",
		Help:    "Duration of catalog API calls in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	FetchesInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "artbrowser_fetches_in_flight",
		Help: "Number of user-triggered fetch sequences currently outstanding",
	})

	StaleResponsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artbrowser_stale_responses_total",
		Help: "Responses dropped because a newer fetch started before they settled",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "artbrowser_active_sessions",
		Help: "Number of browser sessions currently held in memory",
	})
)
