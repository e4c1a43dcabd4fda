package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/parsererror"
)

// Encoding is the character encoding of an input file.
type Encoding string

const (
	EncodingUTF8     Encoding = "utf-8"
	EncodingUTF8BOM  Encoding = "utf-8-sig"
	EncodingShiftJIS Encoding = "shift_jis"
)

// Dialect describes the physical layout of one account's export format.
type Dialect struct {
	Encoding    Encoding
	HeaderLines int
	FooterLines int
	Columns     int
}

// InputRow is one decoded data row. Index is the 1-based record number in the
// file, header included, so it matches what a spreadsheet shows. Err is set
// when the row does not have the expected number of columns.
type InputRow struct {
	Index  int
	Fields []string
	Err    *parsererror.CellError
}

func (e Encoding) decoder() (*encoding.Decoder, error) {
	switch e {
	case EncodingUTF8, EncodingUTF8BOM, "":
		// UTF8BOM strips a leading mark when present and is a no-op otherwise.
		return unicode.UTF8BOM.NewDecoder(), nil
	case EncodingShiftJIS:
		return japanese.ShiftJIS.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding '%s'", e)
	}
}

// ReadRows decodes filePath according to dialect and returns its data rows,
// header and footer removed.
func ReadRows(filePath string, dialect Dialect, logger logging.Logger) ([]InputRow, error) {
	logger = logging.OrDefault(logger)

	file, err := os.Open(filePath) // #nosec G304 -- paths come from the CLI or config
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := DecodeRows(file, dialect)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: fmt.Sprintf("%s CSV with %d columns", dialect.Encoding, dialect.Columns),
			Msg:            err.Error(),
		}
	}

	logger.Debug("Decoded input file",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldEncoding, string(dialect.Encoding)),
		logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// DecodeRows is ReadRows over an arbitrary reader.
func DecodeRows(in io.Reader, dialect Dialect) ([]InputRow, error) {
	decoder, err := dialect.Encoding.decoder()
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(in, decoder))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if len(records) < dialect.HeaderLines+dialect.FooterLines {
		return []InputRow{}, nil
	}
	data := records[dialect.HeaderLines : len(records)-dialect.FooterLines]

	rows := make([]InputRow, 0, len(data))
	for i, fields := range data {
		row := InputRow{Index: dialect.HeaderLines + i + 1, Fields: fields}
		if dialect.Columns > 0 && len(fields) != dialect.Columns {
			row.Err = &parsererror.CellError{
				Field:   "row",
				Message: fmt.Sprintf("expected %d columns, got %d", dialect.Columns, len(fields)),
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
