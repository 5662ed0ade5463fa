package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/logger"
	"github.com/osse101/fitreport/internal/params"
	"github.com/osse101/fitreport/internal/results"
)

type paramsOptions struct {
	format  string
	columns []string
	out     string
}

func (a *app) newParamsCmd() *cobra.Command {
	opts := &paramsOptions{}

	cmd := &cobra.Command{
		Use:   "params [results-file]",
		Short: "Print the fitted parameter table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParams(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", domain.FormatTable,
		fmt.Sprintf("output format (%s)", strings.Join(params.Formats, ", ")))
	cmd.Flags().StringSliceVarP(&opts.columns, "columns", "c", nil,
		"columns to include, in order (default all)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) runParams(cmd *cobra.Command, args []string, opts *paramsOptions) error {
	path := a.resultsPath(args)

	doc, err := results.Load(path)
	if err != nil {
		return err
	}

	tbl, err := params.FromDocument(doc)
	if err != nil {
		return err
	}
	if len(opts.columns) > 0 {
		if tbl, err = tbl.Select(opts.columns...); err != nil {
			return err
		}
	}

	logger.FromContext(cmd.Context()).Info("Projected parameters",
		"path", path, "rows", tbl.Len(), "columns", len(tbl.Columns), "format", opts.format)

	return saveOutput(cmd, opts.out, opts.format, tbl.Records(), func(w io.Writer) error {
		return tbl.Write(w, opts.format)
	})
}
