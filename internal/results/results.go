// Package results loads optimization result documents produced by an
// external fitting run and exposes the handful of fields the report needs.
package results

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/logger"
	"github.com/osse101/fitreport/internal/metrics"
	"github.com/osse101/fitreport/internal/utils"
)

// DefaultFile is the results document read when no path is given
const DefaultFile = "sample_results.json"

// Document is a results document as decoded from JSON, with numbers kept as
// json.Number. Its shape is assumed, not validated: accessors report missing
// or mistyped fields.
type Document map[string]any

// Summary holds the headline fit statistics of a document. Values are
// returned exactly as decoded; numbers are json.Number.
type Summary struct {
	ModelID  any `json:"model_id" yaml:"model_id"`
	AIC      any `json:"aic" yaml:"aic"`
	RMSE     any `json:"rmse" yaml:"rmse"`
	RSquared any `json:"r_squared" yaml:"r_squared"`
}

// Load parses the JSON document at path. Read and parse errors are
// returned wrapped, so errors.Is(err, fs.ErrNotExist) and
// errors.As(err, **json.SyntaxError) still hold.
func Load(path string) (Document, error) {
	var doc Document
	if err := utils.LoadJSON(path, &doc); err != nil {
		metrics.DocumentsLoaded.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	metrics.DocumentsLoaded.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Debug("Loaded results document", "path", path, "keys", len(doc))
	return doc, nil
}

// LoadDefault loads DefaultFile from the working directory
func LoadDefault() (Document, error) {
	return Load(DefaultFile)
}

// Lookup walks the nested mappings along path and returns the value found
// there. A missing key yields domain.ErrMissingField and a non-mapping
// intermediate yields domain.ErrUnexpectedType, both naming the dotted path.
func (d Document) Lookup(path ...string) (any, error) {
	var cur any = map[string]any(d)
	for i, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %s, want object", domain.ErrUnexpectedType, dotted(path[:i]), jsonKind(cur))
		}
		v, found := m[key]
		if !found {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, dotted(path[:i+1]))
		}
		cur = v
	}
	return cur, nil
}

// Summary extracts model id, AIC, RMSE and R² from the document
func (d Document) Summary() (Summary, error) {
	var s Summary
	fields := []struct {
		dst  *any
		path []string
	}{
		{&s.ModelID, []string{domain.KeyMetadata, domain.KeyModelID}},
		{&s.AIC, []string{domain.KeyOptimizationResults, domain.KeyAIC}},
		{&s.RMSE, []string{domain.KeyOptimizationResults, domain.KeyRMSE}},
		{&s.RSquared, []string{domain.KeyOptimizationResults, domain.KeyRSquared}},
	}
	for _, f := range fields {
		v, err := d.Lookup(f.path...)
		if err != nil {
			return Summary{}, err
		}
		*f.dst = v
	}
	return s, nil
}

// jsonKind names the JSON type of a decoded value
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func dotted(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	return strings.Join(path, ".")
}
