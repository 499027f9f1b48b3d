package validation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Validations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_validations_total",
			Help: "Total number of validated logs by prior trust status and outcome",
		},
		[]string{"status", "outcome"},
	)

	TrustTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_trust_transitions_total",
			Help: "Total number of trust status changes by target status",
		},
		[]string{"to"},
	)
)

func ValidationInc(status string, valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	Validations.WithLabelValues(status, outcome).Inc()
}

func TrustTransitionInc(to string) {
	TrustTransitions.WithLabelValues(to).Inc()
}
