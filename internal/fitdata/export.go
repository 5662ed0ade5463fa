package fitdata

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/fitreport/internal/domain"
)

// CSVHeader is the first record written by WriteCSV
var CSVHeader = []string{"x", "y_true", "y_pred"}

// Formats lists the output formats accepted by Write
var Formats = []string{domain.FormatCSV, domain.FormatJSON}

// Write encodes the curve to w in the named format
func (c Curve) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case domain.FormatCSV:
		return c.WriteCSV(w)
	case domain.FormatJSON:
		return c.WriteJSON(w)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", domain.ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}
}

// WriteCSV writes one record per sample. Values use the shortest
// representation that parses back to the same float64.
func (c Curve) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range c.X {
		record := []string{
			strconv.FormatFloat(c.X[i], 'g', -1, 64),
			strconv.FormatFloat(c.YTrue[i], 'g', -1, 64),
			strconv.FormatFloat(c.YPred[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the curve as an object of three arrays
func (c Curve) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
