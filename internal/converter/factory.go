package converter

import (
	"fmt"

	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
)

// Factory assembles output rows from converters.
type Factory struct {
	account models.AccountID
}

// NewFactory creates the Factory of account.
func NewFactory(account models.AccountID) *Factory {
	return &Factory{account: account}
}

// Create builds the output row of conv. Reference errors are returned as is;
// a row the builder rejects is a defect in the converter and becomes a LogicError.
func (f *Factory) Create(conv RowConverter) (models.ZaimRow, error) {
	fields, err := conv.Fields()
	if err != nil {
		return models.ZaimRow{}, err
	}

	row, err := models.NewZaimRowBuilder(conv.Method()).
		WithDate(fields.Date).
		WithCategory(fields.CategoryLarge, fields.CategorySmall).
		WithCashFlowSource(fields.CashFlowSource).
		WithCashFlowTarget(fields.CashFlowTarget).
		WithItemName(fields.ItemName).
		WithNote(fields.Note).
		WithStoreName(fields.StoreName).
		WithAmount(fields.Amount).
		Build()
	if err != nil {
		return models.ZaimRow{}, &parsererror.LogicError{
			Account: string(f.account),
			Record:  fmt.Sprintf("%T", conv),
			Detail:  err.Error(),
		}
	}
	return row, nil
}
