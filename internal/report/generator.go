package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
)

// Generator writes batch reports to disk.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "ReportGenerator")}
}

// WriteErrorCSV writes the undefined references as a header-less, three
// column CSV. Nothing is written when there are none, and a stale file from
// an earlier run is removed.
func (g *Generator) WriteErrorCSV(report Report, path string) error {
	if len(report.UndefinedContents) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale error file: %w", err)
		}
		return nil
	}

	if err := common.WriteCSVFile(report.UndefinedContents, path, false, g.logger); err != nil {
		return fmt.Errorf("failed to write error file: %w", err)
	}
	g.logger.Info("Wrote undefined store/item names",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(report.UndefinedContents)))
	return nil
}

// GenerateReport renders the report in the given format. Only json is supported.
func (g *Generator) GenerateReport(report Report, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSONReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteJSON writes the JSON rendering of report to path.
func (g *Generator) WriteJSON(report Report, path string) error {
	data, err := g.GenerateReport(report, "json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionOutputFile); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func (g *Generator) generateJSONReport(report Report) ([]byte, error) {
	if report.Files == nil {
		report.Files = []FileSummary{}
	}
	if report.UndefinedContents == nil {
		report.UndefinedContents = []ErrorRow{}
	}
	if report.InvalidRows == nil {
		report.InvalidRows = []InvalidRow{}
	}
	jsonReport, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}
