// Package report prints the human-readable summaries of the CLI.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/fitdata"
	"github.com/osse101/fitreport/internal/params"
	"github.com/osse101/fitreport/internal/results"
)

const (
	headingLoaded     = "✓ Loaded results:"
	headingParameters = "✓ Parameters:"
	headingFitStats   = "✓ Goodness of fit:"
)

// WriteSummary prints model id, AIC, RMSE, R² and the name/value/unit
// parameter table of doc. Nothing is written unless every field resolves.
func WriteSummary(w io.Writer, doc results.Document) error {
	summary, err := doc.Summary()
	if err != nil {
		return err
	}

	tbl, err := params.FromDocument(doc)
	if err != nil {
		return err
	}
	tbl, err = tbl.Select(domain.SummaryColumns...)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(headingLoaded + "\n")
	fmt.Fprintf(&sb, "  Model: %s\n", params.FormatValue(summary.ModelID))
	fmt.Fprintf(&sb, "  AIC: %s\n", params.FormatValue(summary.AIC))
	fmt.Fprintf(&sb, "  RMSE: %s\n", params.FormatValue(summary.RMSE))
	fmt.Fprintf(&sb, "  R²: %s\n", params.FormatValue(summary.RSquared))
	sb.WriteString("\n" + headingParameters + "\n")
	sb.WriteString(tbl.Render() + "\n")

	_, err = io.WriteString(w, sb.String())
	return err
}

// WriteFitStats prints the goodness-of-fit statistics of a synthetic curve
func WriteFitStats(w io.Writer, s fitdata.FitStats) error {
	var sb strings.Builder
	sb.WriteString(headingFitStats + "\n")
	fmt.Fprintf(&sb, "  Points: %d\n", s.Points)
	fmt.Fprintf(&sb, "  Residual mean: %.4f\n", s.ResidualMean)
	fmt.Fprintf(&sb, "  Residual std: %.4f\n", s.ResidualStd)
	fmt.Fprintf(&sb, "  RMSE: %.4f\n", s.RMSE)
	fmt.Fprintf(&sb, "  R²: %.4f\n", s.RSquared)

	_, err := io.WriteString(w, sb.String())
	return err
}
