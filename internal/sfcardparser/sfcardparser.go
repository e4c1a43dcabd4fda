// Package sfcardparser converts the history of transit IC cards exported by
// SF Card Viewer. PASMO and Mobile Suica share the format.
package sfcardparser

import (
	"time"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Column positions of an SF Card Viewer row.
const (
	colDate = iota
	colEnterPass
	colEnterCompany
	colEnterStation
	colExitPass
	colExitCompany
	colExitStation
	colUsedAmount
	colBalance
	colNote
	columnCount
)

// Dialect of the SF Card Viewer export.
var Dialect = common.Dialect{
	Encoding:    common.EncodingShiftJIS,
	HeaderLines: 1,
	Columns:     columnCount,
}

// filePatterns match export file names per card.
var filePatterns = map[models.AccountID][]string{
	models.AccountPASMO:       {"pasmo*.csv"},
	models.AccountMobileSuica: {"mobile_suica*.csv", "suica*.csv"},
}

// Note is the メモ column; it discriminates the row kind.
type Note string

const (
	NoteTrain        Note = ""
	NoteSalesGoods   Note = "物販"
	NoteAutoCharge   Note = "ｵｰﾄﾁｬｰｼﾞ"
	NoteExitByWindow Note = "窓出"
	NoteBusTram      Note = "ﾊﾞｽ/路面等"
)

// RawRow is one decoded SF Card Viewer row. UsedAmount is negative for
// spending and positive for charges.
type RawRow struct {
	Date         time.Time
	EnterPass    string
	EnterCompany string
	EnterStation string
	ExitPass     string
	ExitCompany  string
	ExitStation  string
	UsedAmount   int
	Balance      *int
	Note         Note
}

// EnterName is the enter side name used for lookups. Shops and buses may
// leave the station column empty and fill the company column only.
func (r RawRow) EnterName() string {
	if r.EnterStation != "" {
		return r.EnterStation
	}
	return r.EnterCompany
}

// ParseRow decodes the fields of one row.
func ParseRow(fields []string) (RawRow, []parsererror.CellError) {
	reader := record.NewFieldReader(fields)
	raw := RawRow{
		Date:         reader.Date(colDate, "used_date"),
		EnterPass:    reader.String(colEnterPass),
		EnterCompany: reader.String(colEnterCompany),
		EnterStation: reader.String(colEnterStation),
		ExitPass:     reader.String(colExitPass),
		ExitCompany:  reader.String(colExitCompany),
		ExitStation:  reader.String(colExitStation),
		UsedAmount:   reader.Yen(colUsedAmount, "used_amount"),
		Balance:      reader.OptionalYen(colBalance, "balance"),
		Note:         Note(reader.String(colNote)),
	}
	return raw, reader.Errors()
}
