// Package waonparser converts the usage history of the WAON electronic money card.
package waonparser

import (
	"time"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Column positions of a WAON export row.
const (
	colDate = iota
	colStore
	colAmount
	colUseKind
	colChargeKind
	columnCount
)

// Dialect of the WAON export.
var Dialect = common.Dialect{
	Encoding:    common.EncodingUTF8,
	HeaderLines: 1,
	Columns:     columnCount,
}

// FilePatterns match WAON export file names.
var FilePatterns = []string{"waon*.csv"}

// UseKind is the 利用区分 column.
type UseKind string

const (
	UsePayment           UseKind = "支払"
	UsePaymentCancel     UseKind = "支払取消"
	UseCharge            UseKind = "チャージ"
	UseAutoCharge        UseKind = "オートチャージ"
	UseDownloadPoint     UseKind = "ポイントダウンロード"
	UseUploadMigration   UseKind = "WAON移行（アップロード）"
	UseDownloadMigration UseKind = "WAON移行（ダウンロード）"
)

// ChargeKind is the チャージ区分 column. It is "-" on rows that are not charges.
type ChargeKind string

const (
	ChargeBankAccount   ChargeKind = "銀行口座"
	ChargePoint         ChargeKind = "ポイント"
	ChargeCash          ChargeKind = "現金"
	ChargeDownloadValue ChargeKind = "バリューダウンロード"
)

var chargeKinds = map[ChargeKind]bool{
	ChargeBankAccount:   true,
	ChargePoint:         true,
	ChargeCash:          true,
	ChargeDownloadValue: true,
}

// RawRow is one decoded WAON row.
type RawRow struct {
	Date       time.Time
	StoreName  string
	Amount     int
	UseKind    UseKind
	ChargeKind ChargeKind
}

// ParseRow decodes the fields of one row.
func ParseRow(fields []string) (RawRow, []parsererror.CellError) {
	reader := record.NewFieldReader(fields)
	raw := RawRow{
		Date:       reader.Date(colDate, "date"),
		StoreName:  reader.String(colStore),
		Amount:     reader.Yen(colAmount, "used_amount"),
		UseKind:    UseKind(reader.String(colUseKind)),
		ChargeKind: ChargeKind(reader.OptionalString(colChargeKind)),
	}
	if raw.UseKind == "" {
		return raw, append(reader.Errors(), parsererror.Required("use_kind"))
	}
	return raw, reader.Errors()
}
