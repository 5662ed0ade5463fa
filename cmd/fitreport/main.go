// Command fitreport prepares optimization results for the reporting step:
// it summarizes a results document, exports its parameter table and
// synthesizes goodness-of-fit data for plot testing.
package main

import (
	"os"

	"github.com/osse101/fitreport/internal/logger"
)

func main() {
	logger.InitLogger(logger.DefaultConfig())

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
