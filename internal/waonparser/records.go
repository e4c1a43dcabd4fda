package waonparser

import (
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Record is implemented by the WAON record variants only.
type Record interface {
	record.Record
	waonRecord()
}

type storeRow struct {
	record.Base
	store  *catalog.StoreRef
	amount int
}

func (r storeRow) Store() *catalog.StoreRef { return r.store }

func (r storeRow) checks() *record.Checks {
	return (&record.Checks{}).
		RequireString("store_name", r.store.RawName()).
		Check(r.amount != 0, "used_amount", "must not be zero")
}

// PaymentRecord is a purchase.
type PaymentRecord struct {
	storeRow
	record.NeverSkip
}

// PaymentCancelRecord reverses an earlier purchase.
type PaymentCancelRecord struct {
	storeRow
	record.NeverSkip
}

// ChargeRecord is a manual charge. Kind is empty when the export omits it.
type ChargeRecord struct {
	storeRow
	record.NeverSkip
	Kind ChargeKind
}

// AutoChargeRecord is a charge triggered by a low balance.
type AutoChargeRecord struct {
	record.Base
	record.NeverSkip
	amount int
}

// SkippedRecord is a row with no money movement of its own.
type SkippedRecord struct {
	record.Base
	record.NoValidation
	record.AlwaysSkip
	UseKind UseKind
}

func (r PaymentRecord) Validate() []parsererror.CellError { return r.checks().Errors() }

func (r PaymentCancelRecord) Validate() []parsererror.CellError { return r.checks().Errors() }

func (r ChargeRecord) Validate() []parsererror.CellError {
	return r.checks().
		Check(r.Kind != "", "charge_kind", "is required for %s rows", UseCharge).
		Errors()
}

func (r AutoChargeRecord) Validate() []parsererror.CellError {
	return (&record.Checks{}).Check(r.amount != 0, "used_amount", "must not be zero").Errors()
}

func (PaymentRecord) waonRecord()       {}
func (PaymentCancelRecord) waonRecord() {}
func (ChargeRecord) waonRecord()        {}
func (AutoChargeRecord) waonRecord()    {}
func (SkippedRecord) waonRecord()       {}

// classify picks the variant of raw from its use kind.
func classify(raw RawRow, cat catalog.Catalog) (Record, error) {
	newStoreRow := func() storeRow {
		return storeRow{
			Base:   record.NewBase(raw.Date),
			store:  catalog.NewStoreRef(cat, models.AccountWAON, raw.StoreName),
			amount: raw.Amount,
		}
	}

	switch raw.UseKind {
	case UsePayment:
		return PaymentRecord{storeRow: newStoreRow()}, nil
	case UsePaymentCancel:
		return PaymentCancelRecord{storeRow: newStoreRow()}, nil
	case UseCharge:
		if raw.ChargeKind != "" && !chargeKinds[raw.ChargeKind] {
			return nil, &parsererror.ClassificationError{
				Account: string(models.AccountWAON), Field: "charge kind", Value: string(raw.ChargeKind),
			}
		}
		return ChargeRecord{storeRow: newStoreRow(), Kind: raw.ChargeKind}, nil
	case UseAutoCharge:
		return AutoChargeRecord{Base: record.NewBase(raw.Date), amount: raw.Amount}, nil
	case UseDownloadPoint, UseUploadMigration, UseDownloadMigration:
		return SkippedRecord{Base: record.NewBase(raw.Date), UseKind: raw.UseKind}, nil
	default:
		return nil, &parsererror.ClassificationError{
			Account: string(models.AccountWAON), Field: "use kind", Value: string(raw.UseKind),
		}
	}
}
