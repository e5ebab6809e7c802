// Package metrics holds the process-wide prometheus collectors
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Scoring
var (
	// AnalysesTotal counts scored texts by mode, label and source (single or batch)
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentilex_analyses_total",
			Help: "Total analyses by scoring mode, sentiment label and source",
		},
		[]string{"mode", "sentiment", "source"},
	)

	// AnalysisWords observes the token count of scored texts
	AnalysisWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentilex_analysis_words",
			Help:    "Token count per analyzed text",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
	)

	// ExternalScoreFailuresTotal counts external polarity scorer failures by reason
	ExternalScoreFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentilex_external_score_failures_total",
			Help: "External polarity scorer failures replaced by a zero score",
		},
		[]string{"reason"},
	)

	// BatchSize observes the number of texts per batch request
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentilex_batch_size",
			Help:    "Texts per batch analyze request",
			Buckets: []float64{1, 2, 3, 5, 8, 10},
		},
	)
)

// History
var (
	// HistoryRecordsTotal counts history writes by backend and status
	HistoryRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentilex_history_records_total",
			Help: "History writes by backend and status",
		},
		[]string{"backend", "status"},
	)

	// ArchiveWritesTotal counts archive sink writes by sink and status
	ArchiveWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentilex_archive_writes_total",
			Help: "Archive sink writes by sink and status",
		},
		[]string{"sink", "status"},
	)
)

// HTTP
var (
	// RequestDuration observes /api latency by chi route pattern, method and status class
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentilex_http_request_duration_seconds",
			Help:    "API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "class"},
	)

	// RateLimitedTotal counts requests rejected by the throttle
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentilex_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

// Status turns an error into the status label used above
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// StatusClass buckets an HTTP status into 2xx, 4xx and so on
func StatusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Handler serves the default registry
func Handler() http.Handler { return promhttp.Handler() }
