package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/trialbalance/internal/domain"
)

// Metrics holds all Prometheus metrics for a run on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	// Transaction metrics
	Transactions *prometheus.CounterVec
	RowsRejected prometheus.Counter

	// Account metrics
	Accounts       prometheus.Gauge
	LockedAccounts prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,

		Transactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trialbalance_transactions_total",
				Help: "Total number of transactions processed",
			},
			[]string{"type", "result"},
		),
		RowsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "trialbalance_rows_rejected_total",
			Help: "Total number of input rows that could not be parsed",
		}),

		Accounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trialbalance_accounts",
			Help: "Number of known accounts",
		}),
		LockedAccounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trialbalance_locked_accounts",
			Help: "Number of locked accounts",
		}),
	}
}

// TransactionProcessed records the outcome of a transaction.
func (m *Metrics) TransactionProcessed(txType string, err error) {
	m.Transactions.WithLabelValues(txType, Result(err)).Inc()
}

// RowRejected records an unparsable input row.
func (m *Metrics) RowRejected() {
	m.RowsRejected.Inc()
}

// ObserveAccounts sets the account gauges from a final snapshot.
func (m *Metrics) ObserveAccounts(accounts []domain.AccountSnapshot) {
	locked := 0
	for _, acc := range accounts {
		if acc.Locked {
			locked++
		}
	}
	m.Accounts.Set(float64(len(accounts)))
	m.LockedAccounts.Set(float64(locked))
}

// WriteToFile writes all metrics in the text exposition format.
func (m *Metrics) WriteToFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Result maps a processing error to a metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrDispute):
		return "dispute_error"
	case errors.Is(err, domain.ErrResolve):
		return "resolve_error"
	case errors.Is(err, domain.ErrChargeBack):
		return "chargeback_error"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, domain.ErrMissingTransaction):
		return "missing_transaction"
	case errors.Is(err, domain.ErrClientMismatch):
		return "client_mismatch"
	default:
		return "error"
	}
}
