// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Recommendation Metrics
	RecommendLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_lookups_total",
			Help: "Total number of similarity lookups",
		},
		[]string{"kind", "result"}, // kind: "title", "text"; result: "ok", "not_found", "error"
	)

	RecommendLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_lookup_duration_seconds",
			Help:    "Duration of similarity lookups in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"kind"},
	)

	RecommendDegenerateVectors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_degenerate_vectors_total",
			Help: "Total number of zero-norm vector pairs scored as -Inf",
		},
	)

	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogDimension = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_vector_dimension",
			Help: "Vector dimension of the loaded catalog",
		},
	)

	// Metadata Enrichment Metrics
	MetadataRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_requests_total",
			Help: "Total number of metadata enrichment lookups",
		},
		[]string{"result"}, // "success", "cached", "not_found", "disabled", "rejected", "rate_limited", "timeout", "error"
	)

	MetadataRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metadata_request_duration_seconds",
			Help:    "Duration of upstream metadata requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	MetadataCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_cache_hits_total",
			Help: "Total number of metadata cache hits",
		},
		[]string{"tier"}, // "memory", "persistent"
	)

	MetadataCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metadata_cache_misses_total",
			Help: "Total number of metadata cache misses",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordLookup records the outcome of a similarity lookup.
func RecordLookup(kind, result string, duration time.Duration, degenerate int) {
	RecommendLookupsTotal.WithLabelValues(kind, result).Inc()
	RecommendLookupDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if degenerate > 0 {
		RecommendDegenerateVectors.Add(float64(degenerate))
	}
}

// SetCatalog publishes the size and dimension of the loaded catalog.
func SetCatalog(entries, dimension int) {
	CatalogEntries.Set(float64(entries))
	CatalogDimension.Set(float64(dimension))
}

// RecordMetadataRequest records the outcome of one enrichment lookup.
func RecordMetadataRequest(result string) {
	MetadataRequestsTotal.WithLabelValues(result).Inc()
}

// RecordMetadataUpstream records the latency of a request to the metadata provider.
func RecordMetadataUpstream(duration time.Duration) {
	MetadataRequestDuration.Observe(duration.Seconds())
}

// RecordMetadataCache records a metadata cache lookup. tier is empty on a miss.
func RecordMetadataCache(tier string) {
	if tier == "" {
		MetadataCacheMisses.Inc()
		return
	}
	MetadataCacheHits.WithLabelValues(tier).Inc()
}
