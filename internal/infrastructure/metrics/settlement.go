package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Settlement and ledger activity
var (
	// SettlementsComputed counts reports by scope (global|event) and outcome (ok|no_participants|error)
	SettlementsComputed = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_computed_total",
			Help:      "Total number of settlement reports requested",
		},
		[]string{"scope", "outcome"},
	)

	SettlementParticipants = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_participants",
			Help:      "Number of participants in computed settlement reports",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		},
	)

	PurchasesRecorded = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_recorded_total",
			Help:      "Total number of purchases recorded",
		},
	)

	LoginAttempts = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome (success|failure)",
		},
		[]string{"outcome"},
	)
)

// RecordSettlement records one settlement request.
// participants is ignored unless outcome is "ok".
func RecordSettlement(scope, outcome string, participants int) {
	SettlementsComputed.WithLabelValues(scope, outcome).Inc()
	if outcome == "ok" {
		SettlementParticipants.Observe(float64(participants))
	}
}
