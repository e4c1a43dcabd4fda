package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/fileutils"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/parser"
	"fjacquet/zaim-csv/internal/report"
)

// DefaultErrorFile is the name of the undefined reference file.
const DefaultErrorFile = "error.csv"

// ReportFile is the name of the JSON report written when Options.JSONReport is set.
const ReportFile = "report.json"

// ParserResolver finds the account parser of an input file name.
type ParserResolver interface {
	ParserFor(fileName string) (parser.AccountParser, bool)
}

// Options tune the files written by a run.
type Options struct {
	// ErrorFile is the name of the undefined reference file in the output directory.
	ErrorFile string
	// JSONReport also writes report.json to the output directory.
	JSONReport bool
}

// Converter runs a batch: every input file is converted independently, errors
// are aggregated across files and reported once at the end.
type Converter struct {
	parsers   ParserResolver
	options   Options
	generator *report.Generator
	logger    logging.Logger
	newRunID  func() string
}

// NewConverter creates a Converter.
func NewConverter(parsers ParserResolver, options Options, logger logging.Logger) *Converter {
	logger = logging.OrDefault(logger)
	if options.ErrorFile == "" {
		options.ErrorFile = DefaultErrorFile
	}
	return &Converter{
		parsers:   parsers,
		options:   options,
		generator: report.NewGenerator(logger),
		logger:    logger.WithField(logging.FieldComponent, "BatchConverter"),
		newRunID:  uuid.NewString,
	}
}

// ConvertFile converts a single file into outputDir. The returned error is a
// ConversionFailedError when rows failed, or a plain error when the run could
// not complete.
func (c *Converter) ConvertFile(inputFile, outputDir string) (report.Report, error) {
	if !fileutils.FileExists(inputFile) {
		return report.Report{}, fmt.Errorf("input file does not exist: %s", inputFile)
	}
	if _, ok := c.parsers.ParserFor(filepath.Base(inputFile)); !ok {
		return report.Report{}, fmt.Errorf("no account matches file %s", filepath.Base(inputFile))
	}
	if fileutils.SamePath(filepath.Dir(inputFile), outputDir) {
		return report.Report{}, fmt.Errorf("output directory must differ from the input file directory: %s", outputDir)
	}
	return c.run([]string{inputFile}, outputDir)
}

// ConvertDirectory converts every CSV file of inputDir into outputDir. Files
// that match no account are skipped with a warning.
func (c *Converter) ConvertDirectory(inputDir, outputDir string) (report.Report, error) {
	if fileutils.SamePath(inputDir, outputDir) {
		return report.Report{}, fmt.Errorf("output directory must differ from input directory: %s", inputDir)
	}
	files, err := fileutils.ListFilesWithExtension(inputDir, ".csv")
	if err != nil {
		return report.Report{}, err
	}

	var matched []string
	for _, file := range files {
		if _, ok := c.parsers.ParserFor(filepath.Base(file)); !ok {
			c.logger.Warn("No account matches file, skipping", logging.F(logging.FieldInputFile, file))
			continue
		}
		matched = append(matched, file)
	}
	if len(matched) == 0 {
		c.logger.Warn("No supported files found in input directory", logging.F(logging.FieldFile, inputDir))
	}
	return c.run(matched, outputDir)
}

func (c *Converter) run(files []string, outputDir string) (report.Report, error) {
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return report.Report{}, err
	}

	runID := c.newRunID()
	logger := c.logger.WithField(logging.FieldRunID, runID)
	logger.Info("Starting conversion", logging.F(logging.FieldCount, len(files)))

	errs := report.NewErrorAggregator(runID)
	for _, file := range files {
		if err := c.convertOne(file, outputDir, errs, logger); err != nil {
			return report.Report{}, err
		}
	}

	result := errs.Finalize()
	if err := c.generator.WriteErrorCSV(result, filepath.Join(outputDir, c.options.ErrorFile)); err != nil {
		return result, err
	}
	if c.options.JSONReport {
		if err := c.generator.WriteJSON(result, filepath.Join(outputDir, ReportFile)); err != nil {
			return result, err
		}
	}

	if result.HasErrors() {
		logger.Warn("Conversion finished with errors",
			logging.F("undefined_contents", len(result.UndefinedContents)),
			logging.F("invalid_rows", len(result.InvalidRows)))
	} else {
		logger.Info("Conversion finished")
	}
	return result, result.Err()
}

// convertOne converts one file. Row failures are recorded in errs; the returned
// error is an I/O failure that ends the run.
func (c *Converter) convertOne(inputFile, outputDir string, errs *report.ErrorAggregator, logger logging.Logger) error {
	start := time.Now()
	name := filepath.Base(inputFile)
	errs.StartFile(name)

	p, _ := c.parsers.ParserFor(name)
	summary := report.FileSummary{File: name, Account: string(p.Account())}
	logger = logger.WithFields(
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldAccount, string(p.Account())))

	rows, err := common.ReadRows(inputFile, p.Dialect(), logger)
	if err != nil {
		logger.WithError(err).Error("Failed to decode file")
		errs.RecordFatal(fmt.Errorf("%s: %w", name, err))
		summary.Failed = true
		errs.RecordFile(summary)
		return nil
	}
	summary.Rows = len(rows)

	result, err := NewPipeline(p, errs, logger).Run(rows)
	if err != nil {
		logger.WithError(err).Error("Conversion aborted, no output written for file")
		errs.RecordFatal(fmt.Errorf("%s: %w", name, err))
		summary.Failed = true
		errs.RecordFile(summary)
		return nil
	}

	outputFile := filepath.Join(outputDir, name)
	if err := common.WriteZaimRows(result.Rows, outputFile, logger); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	summary.Output = outputFile
	summary.Converted = result.Converted
	summary.Skipped = result.Skipped
	errs.RecordFile(summary)

	logger.Info("Converted file",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldCount, result.Converted),
		logging.F(logging.FieldSkipped, result.Skipped),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return nil
}
