package models

import "strings"

// amazonStoreNames are the canonical names that identify Amazon on card statements.
var amazonStoreNames = map[string]bool{
	"Amazon Japan G.K.": true,
	"Amazon.co.jp":      true,
	"アマゾンジャパン合同会社":      true,
}

// Store is a reference catalog entry for a raw store or counterparty name.
type Store struct {
	RawName        string
	CanonicalName  string
	CategoryLarge  string
	CategorySmall  string
	CategoryIncome string
	// TransferTarget is the display name of another tracked account when the
	// counterparty is one of the user's own accounts.
	TransferTarget string
}

// Name returns the canonical name, or the raw name when the entry passes it through.
func (s Store) Name() string {
	if s.CanonicalName == "" {
		return s.RawName
	}
	return s.CanonicalName
}

// HasTransferTarget reports whether the store is one of the user's own accounts.
func (s Store) HasTransferTarget() bool {
	return strings.TrimSpace(s.TransferTarget) != ""
}

// IsAmazon reports whether the store is Amazon.
func (s Store) IsAmazon() bool {
	return amazonStoreNames[s.Name()]
}

// Item is a reference catalog entry for a raw item name.
type Item struct {
	RawName       string
	CanonicalName string
	CategoryLarge string
	CategorySmall string
}
