package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	fxProbesTotal *prometheus.CounterVec
	grandTotal    *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashview_account_fetches_total",
				Help: "Total number of brokerage cash-balance fetches",
			},
			[]string{"person", "account", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashview_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		fxProbesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashview_fx_probes_total",
				Help: "Total number of FX historical-rate probe requests",
			},
			[]string{"base"},
		),
		grandTotal: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cashview_grand_total",
				Help: "Last computed grand total per currency",
			},
			[]string{"currency"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashview_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records a single account fetch and its outcome.
func (r *Recorder) RecordFetch(person, account, outcome string) {
	r.fetchesTotal.WithLabelValues(person, account, outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordFxProbe records one probe against the FX provider.
func (r *Recorder) RecordFxProbe(base string) {
	r.fxProbesTotal.WithLabelValues(base).Inc()
}

// RecordGrandTotal records the last computed grand total for a currency.
func (r *Recorder) RecordGrandTotal(currency string, value float64) {
	r.grandTotal.WithLabelValues(currency).Set(value)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
