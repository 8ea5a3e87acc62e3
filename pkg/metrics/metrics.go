// Package metrics holds the Prometheus collectors shared by the calculator and
// singleton packages.
package metrics

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Outcome labels for Calculations.
const (
	OutcomeOK              = "ok"
	OutcomeUnsupported     = "unsupported"
	OutcomeInvalidArgument = "invalid_argument"
)

var (
	// Registry is the private registry all collectors below are registered on.
	Registry = prometheus.NewRegistry()

	// Calculations counts dispatcher calls by operator and outcome.
	Calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patterns",
			Name:      "calculations_total",
			Help:      "Number of calculations by operator and outcome.",
		},
		[]string{"operator", "outcome"},
	)

	// Constructions counts shared instances built, per singleton variant.
	Constructions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patterns",
			Name:      "singleton_constructions_total",
			Help:      "Number of singleton instances constructed by variant.",
		},
		[]string{"variant"},
	)
)

func init() {
	Registry.MustRegister(Calculations, Constructions)
}

// ObserveCalculation records one dispatcher call.
func ObserveCalculation(operator, outcome string) {
	Calculations.WithLabelValues(operator, outcome).Inc()
}

// ObserveConstruction records one instance construction.
func ObserveConstruction(variant string) {
	Constructions.WithLabelValues(variant).Inc()
}

// Text gathers the registry and renders it in the Prometheus text format.
func Text() (string, error) {
	families, err := Registry.Gather()
	if err != nil {
		return "", fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return "", fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return buf.String(), nil
}
