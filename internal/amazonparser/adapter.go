package amazonparser

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

const account = string(models.AccountAmazon)

// Adapter implements parser.AccountParser for the Amazon order history.
type Adapter struct {
	parser.BaseParser
	config  config.AmazonConfig
	catalog catalog.Catalog
}

// NewAdapter creates an Amazon parser.
func NewAdapter(cfg config.AmazonConfig, cat catalog.Catalog, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(models.AccountAmazon, Dialect, FilePatterns, logger),
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
	return classify(raw, a.catalog), nil, nil
}

// Select implements parser.AccountParser. Every variant is a payment of an
// item; discounts keep their negative total so they net against the order.
func (a *Adapter) Select(rec record.Record) (converter.RowConverter, error) {
	switch r := rec.(type) {
	case PaymentRecord:
		price, err := record.RequiredAmount(account, "price", r.price)
		if err != nil {
			return nil, err
		}
		number, err := record.RequiredAmount(account, "number", r.number)
		if err != nil {
			return nil, err
		}
		return a.payment(r.itemRow, price*number), nil
	case ShippingHandlingRecord:
		subtotal, err := record.RequiredAmount(account, "subtotal_price_item", r.subtotal)
		if err != nil {
			return nil, err
		}
		return a.payment(r.itemRow, subtotal), nil
	case DiscountRecord:
		total, err := record.RequiredAmount(account, "total_order", r.total)
		if err != nil {
			return nil, err
		}
		return a.payment(r.itemRow, total), nil
	default:
		return nil, a.UnknownRecord(rec)
	}
}

func (a *Adapter) payment(r itemRow, amount int) converter.ItemPayment {
	return converter.ItemPayment{
		Account:   models.AccountAmazon,
		Date:      r.Date(),
		Item:      r.item,
		StoreName: a.config.StoreName,
		Source:    a.config.PaymentAccount,
		Amount:    amount,
	}
}
