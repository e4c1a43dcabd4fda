// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/zaim-csv/internal/models"
)

// EnvPrefix is the prefix of every environment variable read by the converter.
const EnvPrefix = "ZAIM"

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Paths    PathsConfig    `mapstructure:"paths" yaml:"paths"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
	Accounts AccountsConfig `mapstructure:"accounts" yaml:"accounts"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// PathsConfig holds the default directories of a batch run.
type PathsConfig struct {
	Input     string `mapstructure:"input" yaml:"input"`
	Output    string `mapstructure:"output" yaml:"output"`
	Catalog   string `mapstructure:"catalog" yaml:"catalog"`
	ErrorFile string `mapstructure:"error_file" yaml:"error_file"`
}

// ReportConfig controls the error report written after a batch.
type ReportConfig struct {
	JSON bool `mapstructure:"json" yaml:"json"`
}

// AccountsConfig groups the per account settings.
type AccountsConfig struct {
	WAON              WAONConfig      `mapstructure:"waon" yaml:"waon"`
	GoldPointCardPlus GoldPointConfig `mapstructure:"gold_point_card_plus" yaml:"gold_point_card_plus"`
	MUFG              MUFGConfig      `mapstructure:"mufg" yaml:"mufg"`
	PASMO             SFCardConfig    `mapstructure:"pasmo" yaml:"pasmo"`
	MobileSuica       SFCardConfig    `mapstructure:"mobile_suica" yaml:"mobile_suica"`
	Amazon            AmazonConfig    `mapstructure:"amazon" yaml:"amazon"`
}

// WAONConfig configures the WAON electronic money account.
type WAONConfig struct {
	DisplayName      string `mapstructure:"display_name" yaml:"display_name"`
	AutoChargeSource string `mapstructure:"auto_charge_source" yaml:"auto_charge_source"`
	ChargeCashSource string `mapstructure:"charge_cash_source" yaml:"charge_cash_source"`
}

// GoldPointConfig configures the GOLD POINT CARD+ credit card.
type GoldPointConfig struct {
	DisplayName   string `mapstructure:"display_name" yaml:"display_name"`
	SkipAmazonRow bool   `mapstructure:"skip_amazon_row" yaml:"skip_amazon_row"`
}

// MUFGConfig configures the MUFG bank account.
type MUFGConfig struct {
	DisplayName string `mapstructure:"display_name" yaml:"display_name"`
	CashAccount string `mapstructure:"cash_account" yaml:"cash_account"`
}

// SFCardConfig configures a transit card exported by SF Card Viewer.
type SFCardConfig struct {
	DisplayName       string `mapstructure:"display_name" yaml:"display_name"`
	AutoChargeSource  string `mapstructure:"auto_charge_source" yaml:"auto_charge_source"`
	SkipSalesGoodsRow bool   `mapstructure:"skip_sales_goods_row" yaml:"skip_sales_goods_row"`
}

// AmazonConfig configures the Amazon order history.
type AmazonConfig struct {
	StoreName      string `mapstructure:"store_name" yaml:"store_name"`
	PaymentAccount string `mapstructure:"payment_account" yaml:"payment_account"`
}

// SFCard returns the transit card settings of account.
func (a AccountsConfig) SFCard(account models.AccountID) (SFCardConfig, bool) {
	switch account {
	case models.AccountPASMO:
		return a.PASMO, true
	case models.AccountMobileSuica:
		return a.MobileSuica, true
	default:
		return SFCardConfig{}, false
	}
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// A non-empty configFile replaces the search in the default locations.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.zaim-csv")
		v.AddConfigPath(".zaim-csv")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Path defaults
	v.SetDefault("paths.input", "csvinput")
	v.SetDefault("paths.output", "csvoutput")
	v.SetDefault("paths.catalog", "catalog")
	v.SetDefault("paths.error_file", "error.csv")

	v.SetDefault("report.json", false)

	// Account defaults
	v.SetDefault("accounts.waon.display_name", "WAON")
	v.SetDefault("accounts.waon.auto_charge_source", "イオン銀行")
	v.SetDefault("accounts.waon.charge_cash_source", "お財布")
	v.SetDefault("accounts.gold_point_card_plus.display_name", "ヨドバシゴールドポイントカード・プラス")
	v.SetDefault("accounts.gold_point_card_plus.skip_amazon_row", false)
	v.SetDefault("accounts.mufg.display_name", "三菱UFJ銀行")
	v.SetDefault("accounts.mufg.cash_account", "お財布")
	v.SetDefault("accounts.pasmo.display_name", "PASMO")
	v.SetDefault("accounts.pasmo.auto_charge_source", "ヨドバシゴールドポイントカード・プラス")
	v.SetDefault("accounts.pasmo.skip_sales_goods_row", false)
	v.SetDefault("accounts.mobile_suica.display_name", "モバイルSuica")
	v.SetDefault("accounts.mobile_suica.auto_charge_source", "ビューカード")
	v.SetDefault("accounts.mobile_suica.skip_sales_goods_row", false)
	v.SetDefault("accounts.amazon.store_name", "Amazon Japan G.K.")
	v.SetDefault("accounts.amazon.payment_account", "ヨドバシゴールドポイントカード・プラス")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Paths.ErrorFile) == "" {
		return fmt.Errorf("paths.error_file must not be empty")
	}

	// Display names become the cash flow source and target of output rows
	required := map[string]string{
		"accounts.waon.display_name":                 config.Accounts.WAON.DisplayName,
		"accounts.waon.auto_charge_source":           config.Accounts.WAON.AutoChargeSource,
		"accounts.waon.charge_cash_source":           config.Accounts.WAON.ChargeCashSource,
		"accounts.gold_point_card_plus.display_name": config.Accounts.GoldPointCardPlus.DisplayName,
		"accounts.mufg.display_name":                 config.Accounts.MUFG.DisplayName,
		"accounts.mufg.cash_account":                 config.Accounts.MUFG.CashAccount,
		"accounts.pasmo.display_name":                config.Accounts.PASMO.DisplayName,
		"accounts.pasmo.auto_charge_source":          config.Accounts.PASMO.AutoChargeSource,
		"accounts.mobile_suica.display_name":         config.Accounts.MobileSuica.DisplayName,
		"accounts.mobile_suica.auto_charge_source":   config.Accounts.MobileSuica.AutoChargeSource,
		"accounts.amazon.store_name":                 config.Accounts.Amazon.StoreName,
		"accounts.amazon.payment_account":            config.Accounts.Amazon.PaymentAccount,
	}
	for _, key := range sortedKeys(required) {
		if strings.TrimSpace(required[key]) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
