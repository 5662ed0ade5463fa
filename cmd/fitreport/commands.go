package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/fitreport/internal/config"
	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/logger"
	"github.com/osse101/fitreport/internal/metrics"
	"github.com/osse101/fitreport/internal/results"
	"github.com/osse101/fitreport/internal/utils"
)

// app carries state shared by all commands of one invocation
type app struct {
	cfg         *config.Config
	metricsFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fitreport [results-file]",
		Short: "Summarize optimization results for reporting",
		Long: `fitreport reads an optimization results document and prints the model id,
AIC, RMSE, R² and the fitted parameter table.

The results file defaults to $RESULTS_FILE, then ` + results.DefaultFile + `.`,
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runSummary,
	}
	rootCmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "",
		"write run metrics in Prometheus text format to this file (must end in .prom)")

	rootCmd.AddCommand(a.newParamsCmd(), a.newFitDataCmd())
	return rootCmd
}

// setup loads configuration, installs the logger and tags the run
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	a.cfg = cfg

	initLogger(cfg)

	ctx := logger.WithRunID(cmd.Context(), logger.GenerateRunID())
	cmd.SetContext(ctx)
	logger.FromContext(ctx).Debug("Starting command", "command", cmd.CommandPath(), "environment", cfg.Environment)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	path := a.cfg.MetricsFile
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(path); err != nil {
		return err
	}
	logger.FromContext(cmd.Context()).Debug("Wrote metrics", "path", path)
	return nil
}

// resultsPath picks the positional path, falling back to configuration
func (a *app) resultsPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.ResultsFile
}

// saveOutput writes v to path with utils.SaveJSON when JSON output goes to a
// file, and otherwise hands over to writeOutput
func saveOutput(cmd *cobra.Command, path, format string, v any, write func(io.Writer) error) error {
	if path != "" && strings.EqualFold(format, domain.FormatJSON) {
		return utils.SaveJSON(path, v)
	}
	return writeOutput(cmd, path, write)
}

// writeOutput sends write's output to path, or to the command's stdout when
// path is empty
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", path, cerr)
		}
	}()
	return write(f)
}
