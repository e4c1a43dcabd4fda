package record

import (
	"fmt"

	"fjacquet/zaim-csv/internal/parsererror"
)

// Checks accumulates the validation failures of one record.
type Checks struct {
	errs []parsererror.CellError
}

// RequireString fails when value is empty.
func (c *Checks) RequireString(field, value string) *Checks {
	if value == "" {
		c.errs = append(c.errs, parsererror.Required(field))
	}
	return c
}

// RequireAmount fails when an optional amount is absent.
func (c *Checks) RequireAmount(field string, value *int) *Checks {
	if value == nil {
		c.errs = append(c.errs, parsererror.Required(field))
	}
	return c
}

// Check fails with message when ok is false.
func (c *Checks) Check(ok bool, field, format string, args ...interface{}) *Checks {
	if !ok {
		c.errs = append(c.errs, parsererror.CellError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	return c
}

// Errors returns every failure recorded.
func (c *Checks) Errors() []parsererror.CellError {
	return c.errs
}

// RequiredAmount returns the value of an amount that Validate has already
// checked. An absent value here is a defect in the caller and yields a LogicError.
func RequiredAmount(account, field string, value *int) (int, error) {
	if value == nil {
		return 0, &parsererror.LogicError{Account: account, Detail: fmt.Sprintf("%s is absent", field)}
	}
	return *value, nil
}
