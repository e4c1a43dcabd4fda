package parser

import (
	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/converter"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// AccountParser converts the export format of one account.
//
// The batch drives it one row at a time: Classify decodes the fields and picks
// the record variant, then Select picks the converter for a record that
// validated and is not skipped.
type AccountParser interface {
	// Account is the identifier of the account, also the catalog file stem.
	Account() models.AccountID
	// Dialect describes how input files of the account are encoded.
	Dialect() common.Dialect
	// Matches reports whether a file name belongs to the account.
	Matches(fileName string) bool
	// Classify decodes fields into a record. Decoding failures are returned as
	// cell errors with a nil record; a discriminant value the account does not
	// know is returned as a ClassificationError.
	Classify(fields []string) (record.Record, []parsererror.CellError, error)
	// Select picks the converter of rec. It fails with an UndefinedContentError
	// when the choice depends on a store missing from the catalog, and with a
	// LogicError for a record it does not know.
	Select(rec record.Record) (converter.RowConverter, error)
}
