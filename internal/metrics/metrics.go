package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	UnlockSimulated = "simulated"
	UnlockPayPal    = "paypal"
)

// Metrics holds the business counters of the service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	BetsPlaced         prometheus.Counter
	SlipsSettled       prometheus.Counter
	SettlementFailures prometheus.Counter
	Unlocks            *prometheus.CounterVec
	Withdrawals        prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		BetsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tipsters_bets_placed_total",
			Help: "bet slips placed",
		}),
		SlipsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tipsters_slips_settled_total",
			Help: "winning slips credited",
		}),
		SettlementFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tipsters_settlement_failures_total",
			Help: "settlement attempts that failed and will be retried",
		}),
		Unlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tipsters_unlocks_total",
			Help: "bet slips unlocked by payment path",
		}, []string{"path"}),
		Withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tipsters_withdrawals_total",
			Help: "withdrawal requests recorded",
		}),
	}
	m.registry.MustRegister(
		m.BetsPlaced,
		m.SlipsSettled,
		m.SettlementFailures,
		m.Unlocks,
		m.Withdrawals,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
