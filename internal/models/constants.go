package models

// Method is the Zaim row kind written to the 方法 column.
type Method string

const (
	MethodIncome   Method = "income"
	MethodPayment  Method = "payment"
	MethodTransfer Method = "transfer"
)

// AccountID identifies one supported source account.
type AccountID string

const (
	AccountWAON              AccountID = "waon"
	AccountGoldPointCardPlus AccountID = "gold_point_card_plus"
	AccountMUFG              AccountID = "mufg"
	AccountPASMO             AccountID = "pasmo"
	AccountMobileSuica       AccountID = "mobile_suica"
	AccountAmazon            AccountID = "amazon"
)

// AllAccounts lists the supported accounts in the order their parsers are tried.
func AllAccounts() []AccountID {
	return []AccountID{
		AccountWAON,
		AccountGoldPointCardPlus,
		AccountMUFG,
		AccountPASMO,
		AccountMobileSuica,
		AccountAmazon,
	}
}

// CatalogFile is the name of the reference catalog file of the account.
func (a AccountID) CatalogFile() string {
	return string(a) + ".csv"
}

// TracksItems reports whether the account references the item catalog instead
// of the store catalog.
func (a AccountID) TracksItems() bool {
	return a == AccountAmazon
}

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
