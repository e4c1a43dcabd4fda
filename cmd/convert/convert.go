// Package convert provides the single file conversion command.
package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/zaim-csv/cmd/common"
	"fjacquet/zaim-csv/cmd/root"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/report"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert one account export to a Zaim CSV file",
	Long: `Convert one account export to a Zaim CSV file.

The account is detected from the file name. The output file has the same name
as the input and is written to the output directory, together with error.csv
when store or item names are missing from the reference catalog.

Example:
  zaim-csv convert -i csvinput/waon201808.csv -o csvoutput/`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	inputFile := root.SharedFlags.Input
	if inputFile == "" && len(args) == 1 {
		inputFile = args[0]
	}
	if inputFile == "" {
		return fmt.Errorf("an input file must be specified with --input")
	}

	app, err := root.GetContainer()
	if err != nil {
		return err
	}
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = app.GetConfig().Paths.Output
	}

	root.Log.Info("Converting file",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F("output_dir", outputDir))

	return common.RunConversion(cmd, func() (report.Report, error) {
		return app.NewBatchConverter().ConvertFile(inputFile, outputDir)
	})
}
