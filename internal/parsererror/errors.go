// Package parsererror defines the error taxonomy of the conversion pipeline.
//
// Row level problems (CellError, UndefinedContentError) are recoverable: they are
// collected and reported once for the whole batch. ClassificationError and
// LogicError are fatal for the file being converted.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// CellError is a field level validation failure scoped to one input row.
type CellError struct {
	Field   string
	Message string
}

func (e CellError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Required builds the CellError used for a missing required field.
func Required(field string) CellError {
	return CellError{Field: field, Message: "is required"}
}

// Invalid builds a CellError for a value that failed to decode.
func Invalid(field, value string, err error) CellError {
	return CellError{Field: field, Message: fmt.Sprintf("invalid value '%s': %v", value, err)}
}

// UndefinedContentError reports a store or item name missing from the reference
// catalog. AccountFile names the catalog file the user has to fix. Exactly one
// of StoreName and ItemName is set.
type UndefinedContentError struct {
	AccountFile string
	StoreName   string
	ItemName    string
}

func (e *UndefinedContentError) Error() string {
	if e.ItemName != "" {
		return fmt.Sprintf("undefined item '%s' in %s", e.ItemName, e.AccountFile)
	}
	return fmt.Sprintf("undefined store '%s' in %s", e.StoreName, e.AccountFile)
}

// ClassificationError reports a discriminant value that maps to no record variant.
type ClassificationError struct {
	Account string
	Field   string
	Value   string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: unsupported %s '%s'", e.Account, e.Field, e.Value)
}

// LogicError reports a violated internal invariant, such as a record/converter
// combination the selector does not know or an item with an empty name.
type LogicError struct {
	Account string
	Record  string
	Detail  string
}

func (e *LogicError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s: %s", e.Account, e.Detail)
	}
	return fmt.Sprintf("%s: %s (record %s)", e.Account, e.Detail, e.Record)
}

// InvalidFormatError represents an input file that cannot be decoded as the
// expected account format at all.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ConversionFailedError is the single failure signal raised at the end of a batch.
type ConversionFailedError struct {
	UndefinedContents int
	InvalidRows       int
	Fatal             error
}

func (e *ConversionFailedError) Error() string {
	var parts []string
	if e.Fatal != nil {
		parts = append(parts, fmt.Sprintf("fatal: %v", e.Fatal))
	}
	if e.UndefinedContents > 0 {
		parts = append(parts, fmt.Sprintf("%d undefined store/item name(s)", e.UndefinedContents))
	}
	if e.InvalidRows > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid row(s)", e.InvalidRows))
	}
	return "conversion failed: " + strings.Join(parts, ", ")
}

func (e *ConversionFailedError) Unwrap() error {
	return e.Fatal
}

// IsFatal reports whether err must abort conversion of the current file.
func IsFatal(err error) bool {
	var classification *ClassificationError
	var logic *LogicError
	return errors.As(err, &classification) || errors.As(err, &logic)
}

// AsUndefinedContent unwraps err into an UndefinedContentError when possible.
func AsUndefinedContent(err error) (*UndefinedContentError, bool) {
	var undefined *UndefinedContentError
	if errors.As(err, &undefined) {
		return undefined, true
	}
	return nil, false
}
