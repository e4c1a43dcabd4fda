package amazonparser

import (
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Record is implemented by the order history record variants only.
type Record interface {
	record.Record
	amazonRecord()
}

type itemRow struct {
	record.Base
	record.NeverSkip
	item *catalog.ItemRef
}

func (r itemRow) Item() *catalog.ItemRef { return r.item }

// PaymentRecord is one ordered item.
type PaymentRecord struct {
	itemRow
	price  *int
	number *int
}

func (r PaymentRecord) Validate() []parsererror.CellError {
	return (&record.Checks{}).
		RequireString("item_name", r.item.RawName()).
		RequireAmount("price", r.price).
		RequireAmount("number", r.number).
		Errors()
}

// ShippingHandlingRecord is the shipping or handling fee of an order.
type ShippingHandlingRecord struct {
	itemRow
	subtotal *int
}

func (r ShippingHandlingRecord) Validate() []parsererror.CellError {
	return (&record.Checks{}).
		RequireString("item_name", r.item.RawName()).
		RequireAmount("subtotal_price_item", r.subtotal).
		Check(r.subtotal == nil || *r.subtotal != 0, "subtotal_price_item", "must not be zero").
		Errors()
}

// DiscountRecord is a coupon or point discount. Its total is negative.
type DiscountRecord struct {
	itemRow
	total *int
}

func (r DiscountRecord) Validate() []parsererror.CellError {
	return (&record.Checks{}).
		RequireString("item_name", r.item.RawName()).
		RequireAmount("total_order", r.total).
		Errors()
}

// SkippedRecord covers order summaries, billing summaries, free items and
// free shipping.
type SkippedRecord struct {
	record.Base
	record.NoValidation
	record.AlwaysSkip
}

func (PaymentRecord) amazonRecord()          {}
func (ShippingHandlingRecord) amazonRecord() {}
func (DiscountRecord) amazonRecord()         {}
func (SkippedRecord) amazonRecord()          {}

func positive(v *int) bool { return v != nil && *v > 0 }

// classify matches the structure of the numeric columns.
func classify(raw RawRow, cat catalog.Catalog) Record {
	row := itemRow{
		Base: record.NewBase(raw.OrderedDate),
		item: catalog.NewItemRef(cat, models.AccountAmazon, raw.ItemName),
	}

	switch {
	case raw.TotalOrder != nil && *raw.TotalOrder < 0:
		return DiscountRecord{itemRow: row, total: raw.TotalOrder}
	case raw.SubtotalPrice != nil && raw.Price == nil && raw.Number == nil && raw.TotalOrder == nil:
		if *raw.SubtotalPrice == 0 {
			// free shipping
			return SkippedRecord{Base: record.NewBase(raw.OrderedDate)}
		}
		return ShippingHandlingRecord{itemRow: row, subtotal: raw.SubtotalPrice}
	case positive(raw.Price) && positive(raw.Number):
		return PaymentRecord{itemRow: row, price: raw.Price, number: raw.Number}
	default:
		return SkippedRecord{Base: record.NewBase(raw.OrderedDate)}
	}
}
