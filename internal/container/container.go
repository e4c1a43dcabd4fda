// Package container wires the converter: configuration, logger, reference
// catalog and one parser per supported account.
package container

import (
	"fmt"
	"path/filepath"

	"fjacquet/zaim-csv/internal/amazonparser"
	"fjacquet/zaim-csv/internal/batch"
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/goldpointparser"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/mufgparser"
	"fjacquet/zaim-csv/internal/parser"
	"fjacquet/zaim-csv/internal/sfcardparser"
	"fjacquet/zaim-csv/internal/waonparser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. The catalog is loaded once in
// NewContainer and shared read-only by every parser.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	catalog catalog.Catalog
	parsers []parser.AccountParser
}

// NewContainer creates and wires all application dependencies. A nil logger
// is replaced by one built from the configuration.
func NewContainer(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = config.NewLogger(cfg)
	}

	cat, err := catalog.NewLoader(logger).Load(cfg.Paths.Catalog, models.AllAccounts())
	if err != nil {
		return nil, fmt.Errorf("failed to load reference catalog: %w", err)
	}

	parsers, err := newParsers(cfg.Accounts, cat, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Container initialized successfully",
		logging.F("parsers_count", len(parsers)),
		logging.F("catalog_dir", cfg.Paths.Catalog))

	return &Container{
		logger:  logger,
		config:  cfg,
		catalog: cat,
		parsers: parsers,
	}, nil
}

func newParsers(accounts config.AccountsConfig, cat catalog.Catalog, logger logging.Logger) ([]parser.AccountParser, error) {
	parsers := []parser.AccountParser{
		waonparser.NewAdapter(accounts.WAON, cat, logger),
		goldpointparser.NewAdapter(accounts.GoldPointCardPlus, cat, logger),
		mufgparser.NewAdapter(accounts.MUFG, cat, logger),
	}
	for _, account := range []models.AccountID{models.AccountPASMO, models.AccountMobileSuica} {
		cfg, _ := accounts.SFCard(account)
		adapter, err := sfcardparser.NewAdapter(account, cfg, cat, logger)
		if err != nil {
			return nil, err
		}
		parsers = append(parsers, adapter)
	}
	return append(parsers, amazonparser.NewAdapter(accounts.Amazon, cat, logger)), nil
}

// ParserFor returns the parser of the first account whose file patterns
// match fileName.
func (c *Container) ParserFor(fileName string) (parser.AccountParser, bool) {
	name := filepath.Base(fileName)
	for _, p := range c.parsers {
		if p.Matches(name) {
			return p, true
		}
	}
	return nil, false
}

// GetParser returns the parser of account.
func (c *Container) GetParser(account models.AccountID) (parser.AccountParser, error) {
	for _, p := range c.parsers {
		if p.Account() == account {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown account: %s", account)
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() []parser.AccountParser {
	return append([]parser.AccountParser(nil), c.parsers...)
}

// NewBatchConverter returns a batch converter using the container's parsers.
func (c *Container) NewBatchConverter() *batch.Converter {
	return batch.NewConverter(c, batch.Options{
		ErrorFile:  c.config.Paths.ErrorFile,
		JSONReport: c.config.Report.JSON,
	}, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCatalog returns the frozen reference catalog.
func (c *Container) GetCatalog() catalog.Catalog {
	return c.catalog
}
