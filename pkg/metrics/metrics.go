// Package metrics exposes Prometheus counters for account risk tracking.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doodlesbykumbi/accrisk/pkg/risk"
)

var (
	risksCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_risk_created_total",
			Help: "Account risks written, by risk kind.",
		},
		[]string{"risk"},
	)

	risksConfirmed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "account_risk_confirmed_total",
		Help: "Confirm requests that matched a risk.",
	})

	batchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "account_risk_batch_failures_total",
		Help: "Bulk insert batches rolled back.",
	})

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(risksCreated, risksConfirmed, batchFailures)
	})
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// RisksCreated counts n new rows of kind k
func RisksCreated(k risk.Kind, n int) {
	risksCreated.WithLabelValues(string(k)).Add(float64(n))
}

// RiskConfirmed counts a confirmation
func RiskConfirmed() {
	risksConfirmed.Inc()
}

// BatchFailed counts a rolled back batch
func BatchFailed() {
	batchFailures.Inc()
}
