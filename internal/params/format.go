package params

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MissingValue is shown for cells a row does not carry
const MissingValue = "NaN"

// FormatValue renders a decoded JSON value for human-readable output.
// Integer literals print as written. Floats use the shortest round-trip form
// and keep a decimal point, so 10.0 prints as "10.0"; very large or small
// magnitudes switch to exponent form.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return MissingValue
	case string:
		return val
	case json.Number:
		return formatNumber(val)
	case float64:
		return formatFloat(val)
	case bool:
		return strconv.FormatBool(val)
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}

// isIntegerLiteral reports whether n was written without a fraction or exponent
func isIntegerLiteral(n json.Number) bool {
	return !strings.ContainsAny(string(n), ".eE")
}

func formatNumber(n json.Number) string {
	if isIntegerLiteral(n) {
		return string(n)
	}
	f, err := n.Float64()
	if err != nil {
		return string(n)
	}
	return formatFloat(f)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
