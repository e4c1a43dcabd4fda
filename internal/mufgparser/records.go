package mufgparser

import (
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Record is implemented by the MUFG record variants only.
type Record interface {
	record.Record
	mufgRecord()
}

// row holds what every variant shares. amount is the value of the column the
// cash flow kind designates, nil when that column is empty.
type row struct {
	record.Base
	record.NeverSkip
	amount      *int
	amountField string
	note        string
}

func (r row) Note() string { return r.note }

// checkAmount requires the designated amount column to hold a non-zero value.
func (r row) checkAmount(c *record.Checks) *record.Checks {
	return c.RequireAmount(r.amountField, r.amount).
		Check(r.amount == nil || *r.amount != 0, r.amountField, "must not be zero")
}

type storeRow struct {
	row
	store *catalog.StoreRef
}

func (r storeRow) Store() *catalog.StoreRef { return r.store }

func (r storeRow) Validate() []parsererror.CellError {
	c := (&record.Checks{}).RequireString("summary_content", r.store.RawName())
	return r.checkAmount(c).Errors()
}

// IncomeRecord is money received from a third party.
type IncomeRecord struct{ storeRow }

// PaymentRecord is money paid to a third party.
type PaymentRecord struct{ storeRow }

// TransferIncomeRecord is a transfer received. It becomes a transfer when the
// counterparty is one of the user's own accounts.
type TransferIncomeRecord struct{ storeRow }

// TransferPaymentRecord is a transfer sent.
type TransferPaymentRecord struct{ storeRow }

// CashDepositRecord is cash deposited with the user's card or at an ATM.
type CashDepositRecord struct{ row }

// CashWithdrawalRecord is cash withdrawn with the user's card or at an ATM.
type CashWithdrawalRecord struct{ row }

func (r CashDepositRecord) Validate() []parsererror.CellError {
	return r.checkAmount(&record.Checks{}).Errors()
}

func (r CashWithdrawalRecord) Validate() []parsererror.CellError {
	return r.checkAmount(&record.Checks{}).Errors()
}

func (IncomeRecord) mufgRecord()          {}
func (PaymentRecord) mufgRecord()         {}
func (TransferIncomeRecord) mufgRecord()  {}
func (TransferPaymentRecord) mufgRecord() {}
func (CashDepositRecord) mufgRecord()     {}
func (CashWithdrawalRecord) mufgRecord()  {}

// classify picks the variant from the cash flow kind and the summary.
// Self-transfer rows carry no store reference at all.
func classify(raw RawRow, cat catalog.Catalog) (Record, error) {
	var incoming bool
	switch raw.CashFlowKind {
	case KindIncome, KindTransferIncome:
		incoming = true
	case KindPayment, KindTransferPayment:
		incoming = false
	default:
		return nil, &parsererror.ClassificationError{
			Account: string(models.AccountMUFG), Field: "cash flow kind", Value: string(raw.CashFlowKind),
		}
	}

	base := row{Base: record.NewBase(raw.Date), note: raw.Note}
	if incoming {
		base.amount, base.amountField = raw.DepositAmount, "deposit_amount"
	} else {
		base.amount, base.amountField = raw.PaymentAmount, "payment_amount"
	}

	if raw.IsSelfTransfer() {
		if incoming {
			return CashDepositRecord{row: base}, nil
		}
		return CashWithdrawalRecord{row: base}, nil
	}

	withStore := storeRow{row: base, store: catalog.NewStoreRef(cat, models.AccountMUFG, raw.StoreName())}
	switch raw.CashFlowKind {
	case KindIncome:
		return IncomeRecord{withStore}, nil
	case KindPayment:
		return PaymentRecord{withStore}, nil
	case KindTransferIncome:
		return TransferIncomeRecord{withStore}, nil
	default:
		return TransferPaymentRecord{withStore}, nil
	}
}
