package services

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricPostingSuccess      = "posting.success"
	MetricPostingFailed       = "posting.failed"
	MetricPostingDuration     = "posting.duration"
	MetricPaymentSuccess      = "payment.success"
	MetricPaymentFailed       = "payment.failed"
	MetricPaymentAmount       = "payment.amount"
	MetricPaymentReverted     = "payment.reverted"
	MetricStatementGenerated  = "statement.generated"
	MetricStatementSkipped    = "statement.skipped"
	MetricStatementFailed     = "statement.failed"
	MetricStatementOverdue    = "statement.overdue"
	MetricInstallmentCharge   = "installment.charge_created"
	MetricSnapshotCreated     = "snapshot.created"
	MetricSnapshotFailed      = "snapshot.failed"
	MetricJobLastRunTimestamp = "job_last_run"
	MetricAPIError            = "api.error"
	MetricAPIPanic            = "api.panic"

	// JobMetricPrefix prefixes the job name in RecordProcessingTime
	JobMetricPrefix = "job."
)

type PrometheusMetrics struct {
	postingsTotal          *prometheus.CounterVec
	postingDuration        prometheus.Histogram
	paymentsTotal          *prometheus.CounterVec
	paymentAmount          prometheus.Histogram
	reversalsTotal         prometheus.Counter
	statementsTotal        *prometheus.CounterVec
	statementsOverdueTotal prometheus.Counter
	installmentChargeTotal prometheus.Counter
	snapshotsTotal         *prometheus.CounterVec
	jobDuration            *prometheus.HistogramVec
	jobLastRun             *prometheus.GaugeVec
	apiErrorsTotal         *prometheus.CounterVec
	apiPanicsTotal         *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors on reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		postingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_postings_total",
				Help: "Total number of ledger postings",
			},
			[]string{"type", "status"},
		),
		postingDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_posting_duration_milliseconds",
				Help:    "Ledger posting duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		paymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_payments_total",
				Help: "Total number of credit card payments",
			},
			[]string{"kind", "status"},
		),
		paymentAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "card_payment_amount",
				Help:    "Credit card payment amount in currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		reversalsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "card_payment_reversals_total",
				Help: "Total number of reverted credit card payments",
			},
		),
		statementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Statement generator outcomes per account",
			},
			[]string{"status"},
		),
		statementsOverdueTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "statements_overdue_total",
				Help: "Total number of statements marked overdue",
			},
		),
		installmentChargeTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "installment_charges_created_total",
				Help: "Total number of monthly installment charges recorded",
			},
		),
		snapshotsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_snapshots_total",
				Help: "Daily account snapshot outcomes",
			},
			[]string{"status"},
		),
		jobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "job_duration_seconds",
				Help:    "Batch job duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),
		jobLastRun: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "job_last_run_timestamp_seconds",
				Help: "Unix time of the last completed run per job",
			},
			[]string{"job"},
		),
		apiErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
		apiPanicsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_panics_total",
				Help: "Total number of handler panics recovered per endpoint",
			},
			[]string{"endpoint", "method"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricPostingSuccess:
		m.postingsTotal.WithLabelValues(tags["type"], "success").Inc()
	case MetricPostingFailed:
		m.postingsTotal.WithLabelValues(tags["type"], "failed_"+tags["reason"]).Inc()
	case MetricPaymentSuccess:
		m.paymentsTotal.WithLabelValues(tags["kind"], "success").Inc()
	case MetricPaymentFailed:
		m.paymentsTotal.WithLabelValues(tags["kind"], "failed_"+tags["reason"]).Inc()
	case MetricPaymentReverted:
		m.reversalsTotal.Inc()
	case MetricStatementGenerated:
		m.statementsTotal.WithLabelValues("created").Inc()
	case MetricStatementSkipped:
		m.statementsTotal.WithLabelValues("skipped").Inc()
	case MetricStatementFailed:
		m.statementsTotal.WithLabelValues("failed").Inc()
	case MetricStatementOverdue:
		m.statementsOverdueTotal.Inc()
	case MetricInstallmentCharge:
		m.installmentChargeTotal.Inc()
	case MetricSnapshotCreated:
		m.snapshotsTotal.WithLabelValues("created").Inc()
	case MetricSnapshotFailed:
		m.snapshotsTotal.WithLabelValues("failed").Inc()
	case MetricAPIError:
		m.apiErrorsTotal.WithLabelValues(tags["code"], tags["endpoint"], tags["status"]).Inc()
	case MetricAPIPanic:
		m.apiPanicsTotal.WithLabelValues(tags["endpoint"], tags["method"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricPostingDuration:
		m.postingDuration.Observe(float64(duration.Milliseconds()))
	default:
		if job, ok := strings.CutPrefix(name, JobMetricPrefix); ok {
			m.jobDuration.WithLabelValues(job).Observe(duration.Seconds())
		}
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricPaymentAmount:
		m.paymentAmount.Observe(value)
	case MetricJobLastRunTimestamp:
		if job := tags["job"]; job != "" {
			m.jobLastRun.WithLabelValues(job).Set(value)
		}
	}
}

// reasonFor turns a service error into a short metric label
func reasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrOverpaymentRejected):
		return "overpayment"
	case errors.Is(err, ErrAlreadySettled):
		return "already_settled"
	case errors.Is(err, ErrNoBalanceDue):
		return "no_balance_due"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "internal"
	}
}
