package sfcardparser

import (
	"fmt"

	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// Record is implemented by the SF Card Viewer record variants only.
type Record interface {
	record.Record
	sfCardRecord()
}

type storeRow struct {
	record.Base
	store *catalog.StoreRef
	used  int
}

func (r storeRow) Store() *catalog.StoreRef { return r.store }

func (r storeRow) checks(storeField string) *record.Checks {
	return (&record.Checks{}).
		RequireString(storeField, r.store.RawName()).
		Check(r.used != 0, "used_amount", "must not be zero")
}

// TrainRecord is a ride between two gates. The store is the exit station.
type TrainRecord struct {
	storeRow
	enterCompany string
	enterStation string
	exitCompany  string
	exitStation  string
}

// Validate only needs the stations; a zero fare is a skipped ride.
func (r TrainRecord) Validate() []parsererror.CellError {
	return (&record.Checks{}).
		RequireString("railway_company_name_enter", r.enterCompany).
		RequireString("station_name_enter", r.enterStation).
		RequireString("station_name_exit", r.exitStation).
		Errors()
}

// IsRowToSkip skips rides that left through the gate they entered, and rides
// covered by a commuter pass.
func (r TrainRecord) IsRowToSkip() (bool, error) {
	sameStation := r.enterCompany == r.exitCompany && r.enterStation == r.exitStation
	return sameStation || r.used == 0, nil
}

// Note describes the ride.
func (r TrainRecord) Note() string {
	return fmt.Sprintf("%s→%s", r.enterStation, r.exitStation)
}

// ExitByWindowRecord is a fare settled at a station office. The store is the
// exit station.
type ExitByWindowRecord struct {
	storeRow
	record.NeverSkip
}

func (r ExitByWindowRecord) Validate() []parsererror.CellError {
	return r.checks("station_name_exit").Errors()
}

// SalesGoodsRecord is a purchase in a shop accepting the card.
type SalesGoodsRecord struct {
	storeRow
	skip bool
}

func (r SalesGoodsRecord) Validate() []parsererror.CellError {
	return r.checks("station_name_enter").Errors()
}

// IsRowToSkip skips shop purchases when the configuration says they are
// recorded elsewhere.
func (r SalesGoodsRecord) IsRowToSkip() (bool, error) {
	return r.skip, nil
}

// BusTramRecord is a bus or tram ride. The store is the operator.
type BusTramRecord struct {
	storeRow
	record.NeverSkip
}

func (r BusTramRecord) Validate() []parsererror.CellError {
	return r.checks("station_name_enter").Errors()
}

// AutoChargeRecord is an automatic charge at a gate. The store is the station
// the charge happened at.
type AutoChargeRecord struct {
	storeRow
	record.NeverSkip
}

func (r AutoChargeRecord) Validate() []parsererror.CellError {
	return r.checks("station_name_enter").Errors()
}

func (TrainRecord) sfCardRecord()        {}
func (ExitByWindowRecord) sfCardRecord() {}
func (SalesGoodsRecord) sfCardRecord()   {}
func (BusTramRecord) sfCardRecord()      {}
func (AutoChargeRecord) sfCardRecord()   {}

// classify picks the variant from the note and binds the station or shop the
// variant is looked up by.
func classify(raw RawRow, account models.AccountID, cat catalog.Catalog, skipSalesGoods bool) (Record, error) {
	row := func(name string) storeRow {
		return storeRow{
			Base:  record.NewBase(raw.Date),
			store: catalog.NewStoreRef(cat, account, name),
			used:  raw.UsedAmount,
		}
	}

	switch raw.Note {
	case NoteTrain:
		return TrainRecord{
			storeRow:     row(raw.ExitStation),
			enterCompany: raw.EnterCompany,
			enterStation: raw.EnterStation,
			exitCompany:  raw.ExitCompany,
			exitStation:  raw.ExitStation,
		}, nil
	case NoteExitByWindow:
		return ExitByWindowRecord{storeRow: row(raw.ExitStation)}, nil
	case NoteSalesGoods:
		return SalesGoodsRecord{storeRow: row(raw.EnterName()), skip: skipSalesGoods}, nil
	case NoteBusTram:
		return BusTramRecord{storeRow: row(raw.EnterName())}, nil
	case NoteAutoCharge:
		return AutoChargeRecord{storeRow: row(raw.EnterStation)}, nil
	default:
		return nil, &parsererror.ClassificationError{Account: string(account), Field: "note", Value: string(raw.Note)}
	}
}
