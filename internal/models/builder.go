package models

import (
	"errors"
	"fmt"
	"time"

	"fjacquet/zaim-csv/internal/dateutils"
)

// ZaimRowBuilder provides a fluent API for constructing ZaimRow values.
// The first error encountered sticks and is returned by Build.
type ZaimRowBuilder struct {
	row    ZaimRow
	date   time.Time
	amount int
	err    error
}

// NewZaimRowBuilder starts a row of the given method.
func NewZaimRowBuilder(method Method) *ZaimRowBuilder {
	b := &ZaimRowBuilder{row: ZaimRow{Method: method}}
	switch method {
	case MethodIncome, MethodPayment, MethodTransfer:
	default:
		b.err = fmt.Errorf("unknown method '%s'", method)
	}
	return b
}

// WithDate sets the transaction date.
func (b *ZaimRowBuilder) WithDate(date time.Time) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.date = date
	return b
}

// WithCategory sets the large and small category. Transfer rows carry none.
func (b *ZaimRowBuilder) WithCategory(large, small string) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	if b.row.Method == MethodTransfer && (large != "" || small != "") {
		b.err = errors.New("transfer rows have no category")
		return b
	}
	b.row.CategoryLarge = large
	b.row.CategorySmall = small
	return b
}

// WithCashFlowSource sets the 支払元 account.
func (b *ZaimRowBuilder) WithCashFlowSource(source string) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	b.row.CashFlowSource = source
	return b
}

// WithCashFlowTarget sets the 入金先 account.
func (b *ZaimRowBuilder) WithCashFlowTarget(target string) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	b.row.CashFlowTarget = target
	return b
}

// WithItemName sets the 品目 column.
func (b *ZaimRowBuilder) WithItemName(name string) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	b.row.ItemName = name
	return b
}

// WithNote sets the メモ column.
func (b *ZaimRowBuilder) WithNote(note string) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	b.row.Note = note
	return b
}

// WithStoreName sets the お店 column.
func (b *ZaimRowBuilder) WithStoreName(name string) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	b.row.StoreName = name
	return b
}

// WithAmount sets the signed amount. Transfer amounts are written unsigned;
// the direction is carried by the source and target columns.
func (b *ZaimRowBuilder) WithAmount(amount int) *ZaimRowBuilder {
	if b.err != nil {
		return b
	}
	b.amount = amount
	return b
}

// Build validates the row and places the amount in the column of its method.
func (b *ZaimRowBuilder) Build() (ZaimRow, error) {
	if b.err != nil {
		return ZaimRow{}, fmt.Errorf("builder error: %w", b.err)
	}
	if b.date.IsZero() {
		return ZaimRow{}, errors.New("date is required")
	}
	if b.amount == 0 {
		return ZaimRow{}, errors.New("amount must be non-zero")
	}

	row := b.row
	row.Date = dateutils.ToISODate(b.date)

	switch row.Method {
	case MethodIncome:
		if row.CashFlowTarget == "" {
			return ZaimRow{}, errors.New("income rows require a cash flow target")
		}
		if b.amount < 0 {
			return ZaimRow{}, fmt.Errorf("income amount must be positive, got %d", b.amount)
		}
		row.CashFlowSource = ""
		row.AmountIncome = b.amount
	case MethodPayment:
		if row.CashFlowSource == "" {
			return ZaimRow{}, errors.New("payment rows require a cash flow source")
		}
		row.CashFlowTarget = ""
		row.AmountPayment = b.amount
	case MethodTransfer:
		if row.CashFlowSource == "" || row.CashFlowTarget == "" {
			return ZaimRow{}, errors.New("transfer rows require both cash flow source and target")
		}
		row.AmountTransfer = Abs(b.amount)
	}

	return row, nil
}
