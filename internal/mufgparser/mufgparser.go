// Package mufgparser converts the account history of MUFG Bank.
package mufgparser

import (
	"time"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Column positions of an account history row.
const (
	colDate = iota
	colSummary
	colSummaryContent
	colPaymentAmount
	colDepositAmount
	colBalance
	colNote
	colUncollected
	colCashFlowKind
	columnCount
)

// Dialect of the account history export.
var Dialect = common.Dialect{
	Encoding:    common.EncodingShiftJIS,
	HeaderLines: 1,
	Columns:     columnCount,
}

// FilePatterns match account history file names.
var FilePatterns = []string{"mufg*.csv"}

// CashFlowKind is the 入払区分 column.
type CashFlowKind string

const (
	KindIncome          CashFlowKind = "入金"
	KindPayment         CashFlowKind = "支払い"
	KindTransferIncome  CashFlowKind = "振替入金"
	KindTransferPayment CashFlowKind = "振替支払い"
)

// selfTransferSummaries are 摘要 values of cash card and ATM operations.
// Both halves of such a movement belong to the user.
var selfTransferSummaries = map[string]bool{
	"カ－ド": true,
	"カード": true,
	"ＡＴＭ": true,
}

// RawRow is one decoded account history row.
type RawRow struct {
	Date           time.Time
	Summary        string
	SummaryContent string
	PaymentAmount  *int
	DepositAmount  *int
	Balance        *int
	Note           string
	Uncollected    string
	CashFlowKind   CashFlowKind
}

// StoreName is the counterparty: the summary content, or the summary itself
// for rows such as interest that leave the content empty.
func (r RawRow) StoreName() string {
	if r.SummaryContent != "" {
		return r.SummaryContent
	}
	return r.Summary
}

// IsSelfTransfer reports whether the row moves money between the account and
// the user's cash.
func (r RawRow) IsSelfTransfer() bool {
	return selfTransferSummaries[r.Summary]
}

// ParseRow decodes the fields of one row.
func ParseRow(fields []string) (RawRow, []parsererror.CellError) {
	reader := record.NewFieldReader(fields)
	raw := RawRow{
		Date:           reader.Date(colDate, "date"),
		Summary:        reader.String(colSummary),
		SummaryContent: reader.String(colSummaryContent),
		PaymentAmount:  reader.OptionalYen(colPaymentAmount, "payment_amount"),
		DepositAmount:  reader.OptionalYen(colDepositAmount, "deposit_amount"),
		Balance:        reader.OptionalYen(colBalance, "balance"),
		Note:           reader.String(colNote),
		Uncollected:    reader.String(colUncollected),
		CashFlowKind:   CashFlowKind(reader.String(colCashFlowKind)),
	}
	if raw.CashFlowKind == "" {
		return raw, append(reader.Errors(), parsererror.Required("cash_flow_kind"))
	}
	return raw, reader.Errors()
}
