package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
)

// entry is one row of a catalog file.
type entry struct {
	Name                 string `csv:"name"`
	NameZaim             string `csv:"name_zaim"`
	CategoryPaymentLarge string `csv:"category_payment_large"`
	CategoryPaymentSmall string `csv:"category_payment_small"`
	CategoryIncome       string `csv:"category_income"`
	TransferTarget       string `csv:"transfer_target"`
}

// Loader reads one catalog file per account from a directory.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger logging.Logger) *Loader {
	return &Loader{logger: logging.OrDefault(logger)}
}

// Load reads <dir>/<account>.csv for every account and returns the frozen
// catalog. A missing file yields an empty catalog for that account.
func (l *Loader) Load(dir string, accounts []models.AccountID) (*Memory, error) {
	catalog := NewMemory()

	for _, account := range accounts {
		path := filepath.Join(dir, account.CatalogFile())
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Catalog file not found, every name will be undefined",
				logging.F(logging.FieldAccount, string(account)),
				logging.F(logging.FieldFile, path))
			continue
		}

		entries, err := common.ReadCSVFile[entry](path, l.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog for %s: %w", account, err)
		}

		for i, e := range entries {
			if strings.TrimSpace(e.Name) == "" {
				l.logger.Debug("Skipping catalog row without name",
					logging.F(logging.FieldFile, path),
					logging.F(logging.FieldRow, i+2))
				continue
			}
			if err := l.add(catalog, account, e); err != nil {
				return nil, err
			}
		}

		l.logger.Info("Loaded catalog",
			logging.F(logging.FieldAccount, string(account)),
			logging.F(logging.FieldCatalogSize, catalog.Size(account)))
	}

	catalog.Freeze()
	return catalog, nil
}

func (l *Loader) add(catalog *Memory, account models.AccountID, e entry) error {
	if account.TracksItems() {
		return catalog.AddItem(account, models.Item{
			RawName:       e.Name,
			CanonicalName: e.NameZaim,
			CategoryLarge: e.CategoryPaymentLarge,
			CategorySmall: e.CategoryPaymentSmall,
		})
	}
	return catalog.AddStore(account, models.Store{
		RawName:        e.Name,
		CanonicalName:  e.NameZaim,
		CategoryLarge:  e.CategoryPaymentLarge,
		CategorySmall:  e.CategoryPaymentSmall,
		CategoryIncome: e.CategoryIncome,
		TransferTarget: e.TransferTarget,
	})
}
