package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Results metric names
const (
	MetricNameDocumentsLoaded     = "results_documents_loaded_total"
	MetricNameParametersProjected = "results_parameters_projected_total"
)

// Fit data metric names
const (
	MetricNameCurvesGenerated = "fitdata_curves_generated_total"
	MetricNamePointsGenerated = "fitdata_points_generated_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Results metric help text
const (
	HelpTextDocumentsLoaded     = "Total number of results documents loaded, by outcome"
	HelpTextParametersProjected = "Total number of parameter rows projected into tables"
)

// Fit data metric help text
const (
	HelpTextCurvesGenerated = "Total number of synthetic fit curves generated"
	HelpTextPointsGenerated = "Total number of synthetic fit points generated"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
