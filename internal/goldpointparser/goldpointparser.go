// Package goldpointparser converts the monthly statement of the GOLD POINT CARD+
// credit card.
package goldpointparser

import (
	"time"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Column positions of a statement row. The columns after colUsedAmount are
// carried by the export but unused.
const (
	colDate = iota
	colStore
	colUser
	colPaymentKind
	colInstallments
	colPaymentMonth
	colUsedAmount
	colUnused1
	colUnused2
	colUnused3
	colUnused4
	colUnused5
	colUnused6
	columnCount
)

// Dialect of the statement. The last line is the billing total.
var Dialect = common.Dialect{
	Encoding:    common.EncodingShiftJIS,
	HeaderLines: 1,
	FooterLines: 1,
	Columns:     columnCount,
}

// FilePatterns match statement file names.
var FilePatterns = []string{"*gold_point*.csv", "gpc*.csv"}

// RawRow is one decoded statement row.
type RawRow struct {
	Date         time.Time
	StoreName    string
	User         string
	PaymentKind  string
	Installments string
	PaymentMonth string
	UsedAmount   int
}

// ParseRow decodes the fields of one row.
func ParseRow(fields []string) (RawRow, []parsererror.CellError) {
	reader := record.NewFieldReader(fields)
	raw := RawRow{
		Date:         reader.Date(colDate, "used_date"),
		StoreName:    reader.String(colStore),
		User:         reader.String(colUser),
		PaymentKind:  reader.String(colPaymentKind),
		Installments: reader.String(colInstallments),
		PaymentMonth: reader.String(colPaymentMonth),
		UsedAmount:   reader.Yen(colUsedAmount, "used_amount"),
	}
	return raw, reader.Errors()
}
