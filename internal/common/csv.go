// Package common provides the CSV plumbing shared by the account parsers,
// the reference catalog and the report writer.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
)

// ReadCSVFile reads a UTF-8 CSV file with a header line into a slice of structs
// using gocsv. A leading byte order mark is ignored.
// TCSVRow is the struct type that maps to the CSV columns
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger = logging.OrDefault(logger)
	logger.Debug("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := os.Open(filePath) // #nosec G304 -- paths come from the CLI or config
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := transform.NewReader(file, unicode.UTF8BOM.NewDecoder())

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(newCSVReader(reader), &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file %s: %w", filePath, err)
	}

	logger.Debug("Successfully read CSV data",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteCSVFile writes rows to filePath with gocsv, creating parent directories.
// The header line taken from the csv tags is written only when withHeader is set.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, filePath string, withHeader bool, logger logging.Logger) error {
	logger = logging.OrDefault(logger)
	if rows == nil {
		rows = []TCSVRow{}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionOutputFile) // #nosec G304
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := marshalCSV(rows, file, withHeader); err != nil {
		return fmt.Errorf("error writing CSV data to %s: %w", filePath, err)
	}

	logger.Debug("Wrote CSV file",
		logging.F(logging.FieldOutputFile, filePath),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

// WriteZaimRows writes the Zaim import file. The header is always present,
// even for an input that produced no rows.
func WriteZaimRows(rows []models.ZaimRow, filePath string, logger logging.Logger) error {
	if len(rows) == 0 {
		return writeHeaderOnly(filePath, models.ZaimHeader)
	}
	return WriteCSVFile(rows, filePath, true, logger)
}

func marshalCSV[TCSVRow any](rows []TCSVRow, out io.Writer, withHeader bool) error {
	if withHeader {
		return gocsv.Marshal(rows, out)
	}
	return gocsv.MarshalWithoutHeaders(rows, out)
}

func writeHeaderOnly(filePath string, header []string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionOutputFile) // #nosec G304
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	return file.Close()
}

func newCSVReader(in io.Reader) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r
}
