// Package batch handles batch processing of files
package batch

import (
	"github.com/spf13/cobra"

	"fjacquet/zaim-csv/cmd/common"
	"fjacquet/zaim-csv/cmd/root"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/report"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

Every CSV file whose name matches a supported account is converted. A file
with an unknown transaction kind is not written; the other files still are.
Store and item names missing from the reference catalog are collected into
one error.csv for the whole run.

Directories default to paths.input and paths.output of the configuration.

Example:
  zaim-csv batch -i csvinput/ -o csvoutput/`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	app, err := root.GetContainer()
	if err != nil {
		return err
	}

	inputDir, outputDir := root.SharedFlags.Input, root.SharedFlags.Output
	if inputDir == "" {
		inputDir = app.GetConfig().Paths.Input
	}
	if outputDir == "" {
		outputDir = app.GetConfig().Paths.Output
	}

	root.Log.Info("Batch command called",
		logging.F("input_dir", inputDir),
		logging.F("output_dir", outputDir))

	return common.RunConversion(cmd, func() (report.Report, error) {
		return app.NewBatchConverter().ConvertDirectory(inputDir, outputDir)
	})
}
