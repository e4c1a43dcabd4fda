package catalog

import (
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
)

// StoreRef is a lazily resolved store reference. The lookup runs at most once
// and its outcome is cached.
type StoreRef struct {
	catalog  Catalog
	account  models.AccountID
	rawName  string
	resolved bool
	store    models.Store
	err      error
}

// NewStoreRef binds rawName of account to catalog without looking it up.
func NewStoreRef(catalog Catalog, account models.AccountID, rawName string) *StoreRef {
	return &StoreRef{catalog: catalog, account: account, rawName: rawName}
}

// RawName returns the name as written in the input file.
func (r *StoreRef) RawName() string {
	return r.rawName
}

// Resolve returns the catalog entry, or an UndefinedContentError on a miss.
func (r *StoreRef) Resolve() (models.Store, error) {
	if !r.resolved {
		r.resolved = true
		store, ok := r.catalog.LookupStore(r.account, r.rawName)
		if ok {
			r.store = store
		} else {
			r.err = &parsererror.UndefinedContentError{
				AccountFile: r.account.CatalogFile(),
				StoreName:   r.rawName,
			}
		}
	}
	return r.store, r.err
}

// ItemRef is the item counterpart of StoreRef.
type ItemRef struct {
	catalog  Catalog
	account  models.AccountID
	rawName  string
	resolved bool
	item     models.Item
	err      error
}

// NewItemRef binds rawName of account to catalog without looking it up.
func NewItemRef(catalog Catalog, account models.AccountID, rawName string) *ItemRef {
	return &ItemRef{catalog: catalog, account: account, rawName: rawName}
}

// RawName returns the name as written in the input file.
func (r *ItemRef) RawName() string {
	return r.rawName
}

// Resolve returns the catalog entry, or an UndefinedContentError on a miss.
func (r *ItemRef) Resolve() (models.Item, error) {
	if !r.resolved {
		r.resolved = true
		item, ok := r.catalog.LookupItem(r.account, r.rawName)
		if ok {
			r.item = item
		} else {
			r.err = &parsererror.UndefinedContentError{
				AccountFile: r.account.CatalogFile(),
				ItemName:    r.rawName,
			}
		}
	}
	return r.item, r.err
}
