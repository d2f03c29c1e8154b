package lib

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	checkIns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hms",
		Name:      "checkins_total",
		Help:      "Completed guest check-ins.",
	})
	checkOuts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hms",
		Name:      "checkouts_total",
		Help:      "Completed guest check-outs.",
	})
	auditRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hms",
		Name:      "night_audit_runs_total",
		Help:      "Night audit runs by outcome.",
	}, []string{"outcome"})
	kitchenOrders = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hms",
		Name:      "kitchen_orders_total",
		Help:      "Kitchen orders placed.",
	})
)

// RegisterMetrics registers Prometheus metrics. Safe to call multiple times.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(checkIns, checkOuts, auditRuns, kitchenOrders)
	})
}

func IncCheckIn()  { checkIns.Inc() }
func IncCheckOut() { checkOuts.Inc() }

func IncAuditRun(outcome string) { auditRuns.WithLabelValues(outcome).Inc() }

func IncKitchenOrder() { kitchenOrders.Inc() }
