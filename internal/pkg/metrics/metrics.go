package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	// ProviderRequests counts calls to the flight data provider.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_provider_requests_total",
			Help: "Total number of flight provider requests",
		},
		[]string{"endpoint", "outcome"},
	)

	// ProviderRequestDuration observes provider latency per endpoint.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripplanner_provider_request_duration_seconds",
			Help:    "Flight provider request latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	// CacheLookups counts trip result cache hits and misses.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_cache_lookups_total",
			Help: "Total number of trip result cache lookups",
		},
		[]string{"outcome"},
	)

	CityResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_city_resolutions_total",
			Help: "Total number of city name resolutions by source",
		},
		[]string{"source"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripplanner_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 15, 60, 300},
		},
		[]string{"method", "route"},
	)
)
