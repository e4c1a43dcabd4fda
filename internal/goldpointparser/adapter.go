package goldpointparser

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

// Adapter implements parser.AccountParser for GOLD POINT CARD+.
type Adapter struct {
	parser.BaseParser
	config  config.GoldPointConfig
	catalog catalog.Catalog
}

// NewAdapter creates a GOLD POINT CARD+ parser.
func NewAdapter(cfg config.GoldPointConfig, cat catalog.Catalog, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(models.AccountGoldPointCardPlus, Dialect, FilePatterns, logger),
		config:     cfg,
		catalog:    cat,
	}
}

// Classify implements parser.AccountParser. Every amount classifies, so the
// statement never yields a ClassificationError.
func (a *Adapter) Classify(fields []string) (record.Record, []parsererror.CellError, error) {
	raw, errs := ParseRow(fields)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return classify(raw, a.catalog, a.config.SkipAmazonRow), nil, nil
}

// Select implements parser.AccountParser. Refunds stay payments with a
// negative amount so they net against spending.
func (a *Adapter) Select(rec record.Record) (converter.RowConverter, error) {
	switch r := rec.(type) {
	case PaymentRecord:
		return a.payment(r.storeRow), nil
	case ReturnRecord:
		return a.payment(r.storeRow), nil
	default:
		return nil, a.UnknownRecord(rec)
	}
}

func (a *Adapter) payment(r storeRow) converter.StorePayment {
	return converter.StorePayment{Date: r.Date(), Store: r.store, Source: a.config.DisplayName, Amount: r.amount}
}
