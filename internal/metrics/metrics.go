package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quizmaster"

// Metrics holds the application's prometheus collectors. Collectors are
// registered on the registry passed to New, never on the global default.
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Submissions     *prometheus.CounterVec
	Scores          prometheus.Histogram
	Rehydrations    *prometheus.CounterVec
	StaleReferences prometheus.Counter
	CacheLookups    *prometheus.CounterVec
	RateLimited     prometheus.Counter
}

// Label values used with the vectors above.
const (
	SubmissionGraded = "graded"
	SubmissionFailed = "storage_failed"
	ShapeCorrupt     = "corrupt"
	CacheHit         = "hit"
	CacheMiss        = "miss"
	CacheError       = "error"
)

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Quiz submissions by outcome",
			},
			[]string{"outcome"},
		),
		Scores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "submission_score_percent",
				Help:      "Distribution of graded scores",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			},
		),
		Rehydrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "result_rehydrations_total",
				Help:      "Stored results reconstructed for display, by detail layout",
			},
			[]string{"shape"},
		),
		StaleReferences: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "result_stale_references_total",
				Help:      "Question or answer ids in stored results that no longer resolve",
			},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "latest_result_cache_lookups_total",
				Help:      "Latest-result cache lookups by result",
			},
			[]string{"result"},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
	}

	reg.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.Submissions,
		m.Scores,
		m.Rehydrations,
		m.StaleReferences,
		m.CacheLookups,
		m.RateLimited,
	)
	return m
}
