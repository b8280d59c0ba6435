package checkapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/lexcheck/pkg/pattern"
)

// Check outcomes recorded in the result label.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

// Metrics tracks classification counts, request latency and rejections.
type Metrics struct {
	Checks          *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter
}

// NewMetrics registers the API metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexcheck_checks_total",
			Help: "Total number of classifications by validator and result",
		}, []string{"validator", "result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lexcheck_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "lexcheck_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}
}

// ObserveCheck records the outcome of one classification. Unknown validator
// names are folded into a single label value to bound cardinality.
func (m *Metrics) ObserveCheck(validator string, valid bool, failed bool) {
	if _, err := pattern.ParseName(validator); err != nil {
		validator = "unknown"
	}

	result := resultInvalid
	switch {
	case failed:
		result = resultError
	case valid:
		result = resultValid
	}
	m.Checks.WithLabelValues(validator, result).Inc()
}

// ObserveRequest records the duration of a request for route.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(route string, start time.Time) {
	m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}
