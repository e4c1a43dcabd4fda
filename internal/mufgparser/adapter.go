package mufgparser

import (
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/converter"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parser"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Adapter implements parser.AccountParser for MUFG Bank.
type Adapter struct {
	parser.BaseParser
	config  config.MUFGConfig
	catalog catalog.Catalog
}

// NewAdapter creates a MUFG parser.
func NewAdapter(cfg config.MUFGConfig, cat catalog.Catalog, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(models.AccountMUFG, Dialect, FilePatterns, logger),
		config:     cfg,
		catalog:    cat,
	}
}

// Classify implements parser.AccountParser.
func (a *Adapter) Classify(fields []string) (record.Record, []parsererror.CellError, error) {
	raw, errs := ParseRow(fields)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	rec, err := classify(raw, a.catalog)
	if err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

// Select implements parser.AccountParser. Transfer kinds become transfers only
// when the counterparty store names one of the user's accounts.
func (a *Adapter) Select(rec record.Record) (converter.RowConverter, error) {
	switch r := rec.(type) {
	case IncomeRecord:
		return a.income(r.storeRow)
	case PaymentRecord:
		return a.payment(r.storeRow)
	case TransferIncomeRecord:
		store, err := r.store.Resolve()
		if err != nil {
			return nil, err
		}
		if !store.HasTransferTarget() {
			return a.income(r.storeRow)
		}
		return a.transfer(r.row, store.TransferTarget, a.config.DisplayName)
	case TransferPaymentRecord:
		store, err := r.store.Resolve()
		if err != nil {
			return nil, err
		}
		if !store.HasTransferTarget() {
			return a.payment(r.storeRow)
		}
		return a.transfer(r.row, a.config.DisplayName, store.TransferTarget)
	case CashDepositRecord:
		return a.transfer(r.row, a.config.CashAccount, a.config.DisplayName)
	case CashWithdrawalRecord:
		return a.transfer(r.row, a.config.DisplayName, a.config.CashAccount)
	default:
		return nil, a.UnknownRecord(rec)
	}
}

func (a *Adapter) amount(r row) (int, error) {
	return record.RequiredAmount(string(models.AccountMUFG), r.amountField, r.amount)
}

func (a *Adapter) income(r storeRow) (converter.RowConverter, error) {
	amount, err := a.amount(r.row)
	if err != nil {
		return nil, err
	}
	return converter.StoreIncome{Date: r.Date(), Store: r.store, Target: a.config.DisplayName, Amount: amount, Note: r.note}, nil
}

func (a *Adapter) payment(r storeRow) (converter.RowConverter, error) {
	amount, err := a.amount(r.row)
	if err != nil {
		return nil, err
	}
	return converter.StorePayment{Date: r.Date(), Store: r.store, Source: a.config.DisplayName, Amount: amount, Note: r.note}, nil
}

func (a *Adapter) transfer(r row, source, target string) (converter.RowConverter, error) {
	amount, err := a.amount(r)
	if err != nil {
		return nil, err
	}
	return converter.Transfer{Date: r.Date(), Source: source, Target: target, Amount: amount, Note: r.note}, nil
}
