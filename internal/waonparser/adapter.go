package waonparser

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

// Adapter implements parser.AccountParser for WAON.
type Adapter struct {
	parser.BaseParser
	config  config.WAONConfig
	catalog catalog.Catalog
}

// NewAdapter creates a WAON parser.
func NewAdapter(cfg config.WAONConfig, cat catalog.Catalog, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(models.AccountWAON, Dialect, FilePatterns, logger),
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

// Select implements parser.AccountParser.
func (a *Adapter) Select(rec record.Record) (converter.RowConverter, error) {
	switch r := rec.(type) {
	case PaymentRecord:
		return converter.StorePayment{Date: r.Date(), Store: r.store, Source: a.config.DisplayName, Amount: r.amount}, nil
	case PaymentCancelRecord:
		return converter.StorePayment{Date: r.Date(), Store: r.store, Source: a.config.DisplayName, Amount: -r.amount}, nil
	case ChargeRecord:
		return a.selectCharge(r)
	case AutoChargeRecord:
		return converter.Transfer{
			Date: r.Date(), Source: a.config.AutoChargeSource, Target: a.config.DisplayName, Amount: r.amount,
		}, nil
	default:
		return nil, a.UnknownRecord(rec)
	}
}

func (a *Adapter) selectCharge(r ChargeRecord) (converter.RowConverter, error) {
	switch r.Kind {
	case ChargePoint, ChargeDownloadValue:
		return converter.StoreIncome{Date: r.Date(), Store: r.store, Target: a.config.DisplayName, Amount: r.amount}, nil
	case ChargeBankAccount:
		return converter.Transfer{
			Date: r.Date(), Source: a.config.AutoChargeSource, Target: a.config.DisplayName, Amount: r.amount,
		}, nil
	case ChargeCash:
		return converter.Transfer{
			Date: r.Date(), Source: a.config.ChargeCashSource, Target: a.config.DisplayName, Amount: r.amount,
		}, nil
	default:
		return nil, a.UnknownRecord(r)
	}
}
