package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry collects every metric of a run. A dedicated registry keeps the
// textfile free of Go runtime and process collectors.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Results Metrics
var (
	DocumentsLoaded = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDocumentsLoaded,
			Help: HelpTextDocumentsLoaded,
		},
		[]string{LabelOutcome},
	)

	ParametersProjected = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameParametersProjected,
			Help: HelpTextParametersProjected,
		},
	)
)

// Fit Data Metrics
var (
	CurvesGenerated = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurvesGenerated,
			Help: HelpTextCurvesGenerated,
		},
	)

	PointsGenerated = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsGenerated,
			Help: HelpTextPointsGenerated,
		},
	)
)

// WriteTextfile writes the current metric values in the Prometheus text
// format. The file is replaced atomically so a collector never reads a
// partial export. The path is not checked here; config.Validate requires
// the .prom suffix the textfile collector reads.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
