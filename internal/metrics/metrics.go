package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every stylometer collector. It is separate from the default
// registerer so the textfile output only carries extraction metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Extractions counts feature computations by outcome (ok, empty, error).
	Extractions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylometer_extractions_total",
			Help: "Total number of feature vector computations",
		},
		[]string{"status"},
	)

	ExtractionDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylometer_extraction_duration_seconds",
			Help:    "Duration of a single feature vector computation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CapabilityFailures counts failed NLP capability calls, fatal or recovered.
	CapabilityFailures = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylometer_capability_failures_total",
			Help: "Failed external NLP capability calls",
		},
		[]string{"capability"},
	)

	ContractViolations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylometer_contract_violations_total",
			Help: "Out-of-range values clamped from external capabilities",
		},
		[]string{"feature"},
	)

	CacheLookups = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylometer_store_lookups_total",
			Help: "Vector store lookups during batch extraction",
		},
		[]string{"result"},
	)

	DocumentsPending = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylometer_batch_documents_pending",
			Help: "Documents queued but not yet processed by the batch pool",
		},
	)
)

// WriteTextfile dumps the registry in the Prometheus text format, suitable for
// the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
