package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/fitreport/internal/logger"
	"github.com/osse101/fitreport/internal/report"
	"github.com/osse101/fitreport/internal/results"
)

func (a *app) runSummary(cmd *cobra.Command, args []string) error {
	path := a.resultsPath(args)
	log := logger.FromContext(cmd.Context())

	doc, err := results.Load(path)
	if err != nil {
		return err
	}
	log.Info("Loaded results", "path", path)

	return report.WriteSummary(cmd.OutOrStdout(), doc)
}
