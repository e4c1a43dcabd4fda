// Package amazonparser converts the Amazon.co.jp order history exported by
// the "アマゾン注文履歴フィルタ" browser extension.
package amazonparser

import (
	"time"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Column positions of an order history row.
const (
	colOrderedDate = iota
	colOrderID
	colItemName
	colNote
	colPrice
	colNumber
	colSubtotalPrice
	colTotalOrder
	colDestination
	colStatus
	colBillingAddress
	colBillingAmount
	colCreditCardBilledDate
	colCreditCardBilledAmount
	colCreditCardIdentity
	colURLOrderSummary
	colURLReceipt
	colURLItem
	columnCount
)

// Dialect of the order history export.
var Dialect = common.Dialect{
	Encoding:    common.EncodingUTF8BOM,
	HeaderLines: 1,
	Columns:     columnCount,
}

// FilePatterns match order history file names.
var FilePatterns = []string{"amazon*.csv"}

// RawRow is one decoded order history row. The numeric columns are absent
// on summary lines, hence pointers.
type RawRow struct {
	OrderedDate   time.Time
	OrderID       string
	ItemName      string
	Note          string
	Price         *int
	Number        *int
	SubtotalPrice *int
	TotalOrder    *int
}

// ParseRow decodes the fields of one row. The billing and URL columns are
// not needed for conversion and are not decoded.
func ParseRow(fields []string) (RawRow, []parsererror.CellError) {
	reader := record.NewFieldReader(fields)
	raw := RawRow{
		OrderedDate:   reader.Date(colOrderedDate, "ordered_date"),
		OrderID:       reader.String(colOrderID),
		ItemName:      reader.String(colItemName),
		Note:          reader.String(colNote),
		Price:         reader.OptionalYen(colPrice, "price"),
		Number:        reader.OptionalYen(colNumber, "number"),
		SubtotalPrice: reader.OptionalYen(colSubtotalPrice, "subtotal_price_item"),
		TotalOrder:    reader.OptionalYen(colTotalOrder, "total_order"),
	}
	return raw, reader.Errors()
}
