package app

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/louisbranch/netobs-statsgen/internal/platform/errors"
	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/schema"
)

const outcomeDone = "done"

var outcomes = []string{
	outcomeDone,
	apperrors.CodeNullContext.Outcome(),
	apperrors.CodeEmptyMessage.Outcome(),
	apperrors.CodeMissingField.Outcome(),
	apperrors.CodeConnection.Outcome(),
	apperrors.CodeUnexpected.Outcome(),
}

// Metrics records invocation outcomes and created schema objects.
type Metrics struct {
	invocations *prometheus.CounterVec
	created     *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics registers the generator collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statsgen_invocations_total",
			Help: "EventMetaData messages consumed, by terminal outcome.",
		}, []string{"outcome"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statsgen_schema_objects_created_total",
			Help: "Reporting schema objects created because the existence probe found them absent.",
		}, []string{"object"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "statsgen_invocation_duration_seconds",
			Help:    "Time from message receipt to terminal outcome.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.invocations, m.created, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("register statsgen metrics: %w", err)
			}
		}
	}
	for _, outcome := range outcomes {
		m.invocations.WithLabelValues(outcome)
	}
	m.created.WithLabelValues(schema.PacketsViewName)
	m.created.WithLabelValues(schema.ProtocolTypesName)
	return m, nil
}

func (m *Metrics) observe(outcome string, elapsed time.Duration, report schema.Report) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	if report.PacketsViewCreated {
		m.created.WithLabelValues(schema.PacketsViewName).Inc()
	}
	if report.ProtocolTypesCreated {
		m.created.WithLabelValues(schema.ProtocolTypesName).Inc()
	}
}
