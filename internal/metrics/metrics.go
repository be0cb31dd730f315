// Package metrics exposes Prometheus counters for password generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for GenerationRequests.
const (
	OutcomeGenerated = "generated"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

var (
	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sejanpass_generation_requests_total",
			Help: "Total number of generation requests by outcome",
		},
		[]string{"outcome"},
	)

	PasswordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sejanpass_passwords_generated_total",
			Help: "Total number of passwords generated by strength rating",
		},
		[]string{"rating"},
	)

	PasswordLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sejanpass_password_length",
			Help:    "Requested password length after clamping",
			Buckets: []float64{5, 8, 12, 16, 20, 26, 32, 40, 50},
		},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
