package domain

// Results document keys
const (
	KeyMetadata            = "metadata"
	KeyModelID             = "model_id"
	KeyOptimizationResults = "optimization_results"
	KeyAIC                 = "aic"
	KeyRMSE                = "rmse"
	KeyRSquared            = "r_squared"
	KeyParameters          = "parameters"
)

// Parameter entry keys
const (
	ParamName  = "name"
	ParamValue = "value"
	ParamUnit  = "unit"
)

// SummaryColumns are the parameter columns shown in the summary report
var SummaryColumns = []string{ParamName, ParamValue, ParamUnit}

// Output formats
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)
