package record

import (
	"strings"
	"time"

	"fjacquet/zaim-csv/internal/dateutils"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
)

// FieldReader decodes the positional fields of one input row and collects a
// CellError per field that fails to decode. Out of range indexes read as "".
type FieldReader struct {
	fields []string
	errs   []parsererror.CellError
}

// NewFieldReader wraps the fields of one row.
func NewFieldReader(fields []string) *FieldReader {
	return &FieldReader{fields: fields}
}

func (r *FieldReader) raw(index int) string {
	if index < 0 || index >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[index])
}

// String returns the trimmed field.
func (r *FieldReader) String(index int) string {
	return r.raw(index)
}

// OptionalString returns the field, mapping the "-" placeholder to "".
func (r *FieldReader) OptionalString(index int) string {
	value := r.raw(index)
	if value == "-" {
		return ""
	}
	return value
}

// Date decodes a required date field.
func (r *FieldReader) Date(index int, name string) time.Time {
	value := r.raw(index)
	if value == "" {
		r.errs = append(r.errs, parsererror.Required(name))
		return time.Time{}
	}
	date, _, err := dateutils.ParseDate(value)
	if err != nil {
		r.errs = append(r.errs, parsererror.Invalid(name, value, err))
		return time.Time{}
	}
	return date
}

// Yen decodes a required integer yen amount.
func (r *FieldReader) Yen(index int, name string) int {
	value := r.raw(index)
	amount, err := models.ParseYen(value)
	if err != nil {
		if value == "" {
			r.errs = append(r.errs, parsererror.Required(name))
		} else {
			r.errs = append(r.errs, parsererror.Invalid(name, value, err))
		}
		return 0
	}
	return amount
}

// OptionalYen decodes a yen amount that may be absent.
func (r *FieldReader) OptionalYen(index int, name string) *int {
	value := r.raw(index)
	amount, err := models.ParseOptionalYen(value)
	if err != nil {
		r.errs = append(r.errs, parsererror.Invalid(name, value, err))
		return nil
	}
	return amount
}

// Errors returns the decoding failures collected so far.
func (r *FieldReader) Errors() []parsererror.CellError {
	return r.errs
}
