package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the regulatory module. Tracks rule
// lifecycle counts, report generation, and event publish failures.
type Metrics struct {
	RulesCreated     prometheus.Counter
	RulesUpdated     prometheus.Counter
	RulesDeleted     prometheus.Counter
	ReportsGenerated prometheus.Counter
	PublishFailures  prometheus.Counter
	ReportDuration   prometheus.Histogram
	MutationDuration prometheus.Histogram
}

// New creates a Metrics instance with all regulatory module metrics
// registered on the default registry.
func New() *Metrics {
	return &Metrics{
		RulesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regledger_rules_created_total",
			Help: "Total number of regulatory rules created",
		}),
		RulesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regledger_rules_updated_total",
			Help: "Total number of regulatory rule updates accepted",
		}),
		RulesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regledger_rules_deleted_total",
			Help: "Total number of regulatory rules soft-deleted",
		}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regledger_reports_generated_total",
			Help: "Total number of compliance reports generated",
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regledger_event_publish_failures_total",
			Help: "Total number of rule-change event publish failures",
		}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "regledger_report_duration_seconds",
			Help:    "Duration of compliance report generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		MutationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "regledger_rule_mutation_duration_seconds",
			Help:    "Duration of rule create/update/delete operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveMutation records the duration of a rule mutation. Call with
// time.Now() captured at the start of the operation.
func (m *Metrics) ObserveMutation(start time.Time) {
	m.MutationDuration.Observe(time.Since(start).Seconds())
}

// ObserveReport records the duration of a report generation.
func (m *Metrics) ObserveReport(start time.Time) {
	m.ReportDuration.Observe(time.Since(start).Seconds())
}
