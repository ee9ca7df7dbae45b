package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
	colorWhite = "\033[0;37m"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorRed, err.Error(), colorReset)
	os.Exit(1)
}

func infof(msg string, format ...interface{}) {
	formatted := fmt.Sprintf(msg, format...)
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorWhite, formatted, colorReset)
}

func printSummary(cfg Config, summary *LoadSummary) {
	if cfg.OutputFormat == "json" {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(out))
		return
	}

	infof("dataset %s: %d rows x %d columns", summary.DatasetID, summary.Rows, summary.Columns)
	infof("target column %q, train %d rows, test %d rows",
		summary.Target, summary.TrainRows, summary.TestRows)
	infof("loaded in %s, total %s", summary.LoadTime, summary.ElapsedTime)
}
