package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Options sets the identity under which metrics are exported
type Options struct {
	Namespace string
	Subsystem string
}

// DefaultOptions returns the standard metric identity
func DefaultOptions() Options {
	return Options{
		Namespace: "semserial",
		Subsystem: "serializer",
	}
}

// Metrics contains the serialization metrics recorded by sessions and
// the factory registry
type Metrics struct {
	SessionsStarted     *prometheus.CounterVec
	SessionsEnded       *prometheus.CounterVec
	SessionDuration     *prometheus.HistogramVec
	StatementsTotal     *prometheus.CounterVec
	BytesWritten        *prometheus.CounterVec
	ErrorsTotal         *prometheus.CounterVec
	FactoriesRegistered prometheus.Gauge
}

// NewMetrics creates a new Metrics instance. Zero-value Options fields
// fall back to the defaults.
func NewMetrics(opts Options) *Metrics {
	def := DefaultOptions()
	if opts.Namespace == "" {
		opts.Namespace = def.Namespace
	}
	if opts.Subsystem == "" {
		opts.Subsystem = def.Subsystem
	}

	return &Metrics{
		SessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "sessions_started_total",
				Help:      "Total number of serializer sessions bound to a sink",
			},
			[]string{"syntax"},
		),

		SessionsEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "sessions_ended_total",
				Help:      "Total number of serializer sessions ended",
			},
			[]string{"syntax", "status"},
		),

		SessionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "session_duration_seconds",
				Help:      "Time from sink bind to end of serialization in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"syntax"},
		),

		StatementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "statements_total",
				Help:      "Total number of statements serialized",
			},
			[]string{"syntax"},
		),

		BytesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "bytes_written_total",
				Help:      "Total bytes written through sessions to their sinks",
			},
			[]string{"syntax"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "errors_total",
				Help:      "Total number of serialization errors by classification",
			},
			[]string{"syntax", "class"},
		),

		FactoriesRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "factories_registered",
				Help:      "Number of serializer factories currently registered",
			},
		),
	}
}

// RecordSessionStarted increments the started-session counter
func (m *Metrics) RecordSessionStarted(syntax string) {
	m.SessionsStarted.WithLabelValues(syntax).Inc()
}

// RecordSessionEnded increments the ended-session counter and observes
// the cycle duration
func (m *Metrics) RecordSessionEnded(syntax, status string, duration time.Duration) {
	m.SessionsEnded.WithLabelValues(syntax, status).Inc()
	m.SessionDuration.WithLabelValues(syntax).Observe(duration.Seconds())
}

// RecordStatement increments the serialized-statement counter
func (m *Metrics) RecordStatement(syntax string) {
	m.StatementsTotal.WithLabelValues(syntax).Inc()
}

// RecordBytes adds written bytes to the byte counter
func (m *Metrics) RecordBytes(syntax string, n int) {
	m.BytesWritten.WithLabelValues(syntax).Add(float64(n))
}

// RecordError increments the error counter for a severity class
func (m *Metrics) RecordError(syntax, class string) {
	m.ErrorsTotal.WithLabelValues(syntax, class).Inc()
}

// RecordFactoriesRegistered updates the registered-factory gauge
func (m *Metrics) RecordFactoriesRegistered(count int) {
	m.FactoriesRegistered.Set(float64(count))
}
