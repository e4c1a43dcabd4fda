package goldpointparser

import (
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Record is implemented by the statement record variants only.
type Record interface {
	record.Record
	goldPointRecord()
}

type storeRow struct {
	record.Base
	store         *catalog.StoreRef
	amount        int
	skipAmazonRow bool
}

func (r storeRow) Store() *catalog.StoreRef { return r.store }

func (r storeRow) Validate() []parsererror.CellError {
	return (&record.Checks{}).RequireString("used_store", r.store.RawName()).Errors()
}

// PaymentRecord is a purchase charged to the card.
type PaymentRecord struct {
	storeRow
}

// IsRowToSkip skips Amazon purchases when the Amazon order history is
// imported separately.
func (r PaymentRecord) IsRowToSkip() (bool, error) {
	if !r.skipAmazonRow {
		return false, nil
	}
	store, err := r.store.Resolve()
	if err != nil {
		return false, err
	}
	return store.IsAmazon(), nil
}

// ReturnRecord is a refund; its amount is negative. Refunds are always kept.
type ReturnRecord struct {
	storeRow
	record.NeverSkip
}

// ZeroRecord is a row without amount, such as an annual fee waiver.
type ZeroRecord struct {
	record.Base
	record.NoValidation
	record.AlwaysSkip
}

func (PaymentRecord) goldPointRecord() {}
func (ReturnRecord) goldPointRecord()  {}
func (ZeroRecord) goldPointRecord()    {}

// classify picks the variant from the sign of the used amount.
func classify(raw RawRow, cat catalog.Catalog, skipAmazonRow bool) Record {
	row := storeRow{
		Base:          record.NewBase(raw.Date),
		store:         catalog.NewStoreRef(cat, models.AccountGoldPointCardPlus, raw.StoreName),
		amount:        raw.UsedAmount,
		skipAmazonRow: skipAmazonRow,
	}
	switch {
	case raw.UsedAmount > 0:
		return PaymentRecord{storeRow: row}
	case raw.UsedAmount < 0:
		return ReturnRecord{storeRow: row}
	default:
		return ZeroRecord{Base: record.NewBase(raw.Date)}
	}
}
