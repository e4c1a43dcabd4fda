// Package record defines the classified input row shared by every account
// parser, and the helpers that decode raw fields and collect validation errors.
package record

import (
	"time"

	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/parsererror"
)

// Record is one classified input row. Each account defines a closed set of
// variants implementing it.
type Record interface {
	// Date is the transaction date.
	Date() time.Time
	// Validate returns every field level violation of the row, not only the first.
	Validate() []parsererror.CellError
	// IsRowToSkip reports whether the row must produce no output. It fails only
	// when the skip policy depends on a store that is not in the catalog.
	IsRowToSkip() (bool, error)
}

// StoreRecord is a record that references the store catalog.
type StoreRecord interface {
	Record
	Store() *catalog.StoreRef
}

// ItemRecord is a record that references the item catalog.
type ItemRecord interface {
	Record
	Item() *catalog.ItemRef
}

// NoteRecord is a record carrying a free text note copied to the output.
type NoteRecord interface {
	Record
	Note() string
}

// Base holds the date common to every variant. Account records embed it.
type Base struct {
	date time.Time
}

// NewBase creates a Base for date.
func NewBase(date time.Time) Base {
	return Base{date: date}
}

// Date implements Record.
func (b Base) Date() time.Time {
	return b.date
}

// NoValidation is embedded by variants with no field constraint beyond decoding.
type NoValidation struct{}

// Validate implements Record.
func (NoValidation) Validate() []parsererror.CellError {
	return nil
}

// NeverSkip is embedded by variants that are always converted.
type NeverSkip struct{}

// IsRowToSkip implements Record.
func (NeverSkip) IsRowToSkip() (bool, error) {
	return false, nil
}

// AlwaysSkip is embedded by variants that never produce output.
type AlwaysSkip struct{}

// IsRowToSkip implements Record.
func (AlwaysSkip) IsRowToSkip() (bool, error) {
	return true, nil
}
