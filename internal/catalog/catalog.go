// Package catalog holds the reference catalog that maps raw store and item
// names found in input files to canonical names and categories.
package catalog

import (
	"fmt"
	"sync"

	"fjacquet/zaim-csv/internal/models"
)

// Catalog is a read-only keyed lookup of stores and items per account.
// A miss is reported by the boolean, never by an error.
type Catalog interface {
	LookupStore(account models.AccountID, rawName string) (models.Store, bool)
	LookupItem(account models.AccountID, rawName string) (models.Item, bool)
}

// Memory is an in-memory Catalog with a load-then-freeze lifecycle.
// Entries can only be added before Freeze; lookups are safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	stores map[models.AccountID]map[string]models.Store
	items  map[models.AccountID]map[string]models.Item
	frozen bool
}

// NewMemory creates an empty, writable catalog.
func NewMemory() *Memory {
	return &Memory{
		stores: make(map[models.AccountID]map[string]models.Store),
		items:  make(map[models.AccountID]map[string]models.Item),
	}
}

// AddStore registers a store of account under its raw name.
func (m *Memory) AddStore(account models.AccountID, store models.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return fmt.Errorf("catalog is frozen")
	}
	if store.RawName == "" {
		return fmt.Errorf("store of %s has an empty name", account)
	}
	if m.stores[account] == nil {
		m.stores[account] = make(map[string]models.Store)
	}
	m.stores[account][store.RawName] = store
	return nil
}

// AddItem registers an item of account under its raw name.
func (m *Memory) AddItem(account models.AccountID, item models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return fmt.Errorf("catalog is frozen")
	}
	if item.RawName == "" {
		return fmt.Errorf("item of %s has an empty name", account)
	}
	if m.items[account] == nil {
		m.items[account] = make(map[string]models.Item)
	}
	m.items[account][item.RawName] = item
	return nil
}

// Freeze makes the catalog read-only.
func (m *Memory) Freeze() {
	m.mu.Lock()
	m.frozen = true
	m.mu.Unlock()
}

// LookupStore implements Catalog.
func (m *Memory) LookupStore(account models.AccountID, rawName string) (models.Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	store, ok := m.stores[account][rawName]
	return store, ok
}

// LookupItem implements Catalog.
func (m *Memory) LookupItem(account models.AccountID, rawName string) (models.Item, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[account][rawName]
	return item, ok
}

// Size returns the number of entries registered for account.
func (m *Memory) Size(account models.AccountID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stores[account]) + len(m.items[account])
}
