// Package common contains shared functionality for command handlers
package common

import (
	"github.com/spf13/cobra"

	"fjacquet/zaim-csv/internal/report"
)

// RunConversion runs convert and prints the summary of its report. When the
// run failed before producing a report, only the error is returned.
func RunConversion(cmd *cobra.Command, convert func() (report.Report, error)) error {
	result, err := convert()
	if result.RunID == "" {
		return err
	}
	report.PrintSummary(cmd.OutOrStdout(), result)
	return err
}
