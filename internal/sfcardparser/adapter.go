package sfcardparser

import (
	"fmt"

	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/converter"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parser"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Adapter implements parser.AccountParser for one transit card.
type Adapter struct {
	parser.BaseParser
	config  config.SFCardConfig
	catalog catalog.Catalog
}

// NewAdapter creates the parser of a transit card account.
func NewAdapter(account models.AccountID, cfg config.SFCardConfig, cat catalog.Catalog, logger logging.Logger) (*Adapter, error) {
	patterns, ok := filePatterns[account]
	if !ok {
		return nil, fmt.Errorf("account %s is not an SF Card Viewer card", account)
	}
	return &Adapter{
		BaseParser: parser.NewBaseParser(account, Dialect, patterns, logger),
		config:     cfg,
		catalog:    cat,
	}, nil
}

// Classify implements parser.AccountParser.
func (a *Adapter) Classify(fields []string) (record.Record, []parsererror.CellError, error) {
	raw, errs := ParseRow(fields)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	rec, err := classify(raw, a.Account(), a.catalog, a.config.SkipSalesGoodsRow)
	if err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

// Select implements parser.AccountParser. Spending is negative on the card,
// so payments negate the used amount.
func (a *Adapter) Select(rec record.Record) (converter.RowConverter, error) {
	switch r := rec.(type) {
	case TrainRecord:
		return a.payment(r.storeRow, r.Note()), nil
	case ExitByWindowRecord:
		return a.payment(r.storeRow, ""), nil
	case SalesGoodsRecord:
		return a.payment(r.storeRow, ""), nil
	case BusTramRecord:
		return a.payment(r.storeRow, ""), nil
	case AutoChargeRecord:
		// negative from the card's point of view; the transfer column is unsigned
		return converter.StoreTransfer{
			Date:   r.Date(),
			Store:  r.store,
			Source: a.config.AutoChargeSource,
			Target: a.config.DisplayName,
			Amount: -r.used,
		}, nil
	default:
		return nil, a.UnknownRecord(rec)
	}
}

func (a *Adapter) payment(r storeRow, note string) converter.StorePayment {
	return converter.StorePayment{
		Date:   r.Date(),
		Store:  r.store,
		Source: a.config.DisplayName,
		Amount: -r.used,
		Note:   note,
	}
}
