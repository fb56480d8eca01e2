// Package metrics holds the Prometheus collectors of the TIN server.
//
// All recording methods are safe on a nil *Metrics, so components can be
// built without metrics in tests and tools.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Validation outcomes used as the "result" label.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// CountryUnknown is the "country" label for codes outside the supported set,
// keeping the label space bounded whatever clients send.
const CountryUnknown = "unknown"

// Metrics provides observability for validation, batches, the locale-code
// set and the HTTP surface.
type Metrics struct {
	Validations        *prometheus.CounterVec
	ValidationDuration prometheus.Histogram
	BatchSize          prometheus.Histogram
	LocaleCodes        prometheus.Gauge
	HTTPRequests       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg creates
// unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tin_validations_total",
			Help: "Total number of TIN validations by country and result",
		}, []string{"country", "result"}),
		ValidationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tin_validation_duration_seconds",
			Help:    "Duration of a single TIN validation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tin_batch_size",
			Help:    "Number of items per batch validation request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		}),
		LocaleCodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tin_locale_codes",
			Help: "Size of the active Italian locale-code set",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tin_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// ObserveValidation records one validation. Call with time.Now() taken at
// the start of the operation.
func (m *Metrics) ObserveValidation(country, result string, start time.Time) {
	if m == nil {
		return
	}
	m.Validations.WithLabelValues(country, result).Inc()
	m.ValidationDuration.Observe(time.Since(start).Seconds())
}

// ObserveBatch records the size of a batch request.
func (m *Metrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.BatchSize.Observe(float64(size))
}

// SetLocaleCodes records the size of the active locale-code set.
func (m *Metrics) SetLocaleCodes(n int) {
	if m == nil {
		return
	}
	m.LocaleCodes.Set(float64(n))
}

// ObserveHTTPRequest records a finished HTTP request.
func (m *Metrics) ObserveHTTPRequest(route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
