// Package converter turns classified records into Zaim output rows.
//
// Each account selects one RowConverter per record. The converters here cover
// the three output shapes; they resolve catalog references lazily so that a
// missing store or item surfaces as an UndefinedContentError at conversion.
package converter

import (
	"fmt"
	"time"

	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
)

// Fields are the values a converter contributes to an output row.
type Fields struct {
	Date           time.Time
	CategoryLarge  string
	CategorySmall  string
	CashFlowSource string
	CashFlowTarget string
	ItemName       string
	Note           string
	StoreName      string
	Amount         int
}

// RowConverter computes the output fields of one record.
type RowConverter interface {
	// Method is the output row shape.
	Method() models.Method
	// Fields resolves the references of the record and returns the output values.
	Fields() (Fields, error)
}

// StorePayment converts a purchase at a catalog store.
type StorePayment struct {
	Date   time.Time
	Store  *catalog.StoreRef
	Source string
	Amount int
	Note   string
}

// Method implements RowConverter.
func (c StorePayment) Method() models.Method { return models.MethodPayment }

// Fields resolves the store; an unknown store yields an UndefinedContentError.
func (c StorePayment) Fields() (Fields, error) {
	store, err := c.Store.Resolve()
	if err != nil {
		return Fields{}, err
	}
	return Fields{
		Date:           c.Date,
		CategoryLarge:  store.CategoryLarge,
		CategorySmall:  store.CategorySmall,
		CashFlowSource: c.Source,
		Note:           c.Note,
		StoreName:      store.Name(),
		Amount:         c.Amount,
	}, nil
}

// StoreIncome converts money received from a catalog store or counterparty.
// The income category comes from the store's category_income column.
type StoreIncome struct {
	Date   time.Time
	Store  *catalog.StoreRef
	Target string
	Amount int
	Note   string
}

// Method implements RowConverter.
func (c StoreIncome) Method() models.Method { return models.MethodIncome }

// Fields resolves the store and uses its income category.
func (c StoreIncome) Fields() (Fields, error) {
	store, err := c.Store.Resolve()
	if err != nil {
		return Fields{}, err
	}
	return Fields{
		Date:           c.Date,
		CategoryLarge:  store.CategoryIncome,
		CashFlowTarget: c.Target,
		Note:           c.Note,
		StoreName:      store.Name(),
		Amount:         c.Amount,
	}, nil
}

// Transfer converts a movement between two of the user's own accounts.
// Amount may be signed; the output column holds its magnitude.
type Transfer struct {
	Date   time.Time
	Source string
	Target string
	Amount int
	Note   string
}

// Method implements RowConverter.
func (c Transfer) Method() models.Method { return models.MethodTransfer }

// Fields implements RowConverter. A transfer needs no catalog lookup.
func (c Transfer) Fields() (Fields, error) {
	return Fields{
		Date:           c.Date,
		CashFlowSource: c.Source,
		CashFlowTarget: c.Target,
		Note:           c.Note,
		Amount:         c.Amount,
	}, nil
}

// StoreTransfer is a Transfer whose note names a catalog store, such as the
// station where a transit card was charged.
type StoreTransfer struct {
	Date   time.Time
	Store  *catalog.StoreRef
	Source string
	Target string
	Amount int
}

// Method implements RowConverter.
func (c StoreTransfer) Method() models.Method { return models.MethodTransfer }

// Fields resolves the store and writes its name as the note.
func (c StoreTransfer) Fields() (Fields, error) {
	store, err := c.Store.Resolve()
	if err != nil {
		return Fields{}, err
	}
	return Transfer{Date: c.Date, Source: c.Source, Target: c.Target, Amount: c.Amount, Note: store.Name()}.Fields()
}

// ItemPayment converts the purchase of a catalog item.
type ItemPayment struct {
	Account   models.AccountID
	Date      time.Time
	Item      *catalog.ItemRef
	StoreName string
	Source    string
	Amount    int
	Note      string
}

// Method implements RowConverter.
func (c ItemPayment) Method() models.Method { return models.MethodPayment }

// Fields resolves the item. An item with an empty canonical name yields a LogicError.
func (c ItemPayment) Fields() (Fields, error) {
	item, err := c.Item.Resolve()
	if err != nil {
		return Fields{}, err
	}
	if item.CanonicalName == "" {
		return Fields{}, &parsererror.LogicError{
			Account: string(c.Account),
			Detail:  fmt.Sprintf("item '%s' has an empty name_zaim", item.RawName),
		}
	}
	return Fields{
		Date:           c.Date,
		CategoryLarge:  item.CategoryLarge,
		CategorySmall:  item.CategorySmall,
		CashFlowSource: c.Source,
		ItemName:       item.CanonicalName,
		Note:           c.Note,
		StoreName:      c.StoreName,
		Amount:         c.Amount,
	}, nil
}
