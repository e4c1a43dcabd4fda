package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "csvinput", config.Paths.Input)
	assert.Equal(t, "csvoutput", config.Paths.Output)
	assert.Equal(t, "catalog", config.Paths.Catalog)
	assert.Equal(t, "error.csv", config.Paths.ErrorFile)
	assert.False(t, config.Report.JSON)
	assert.Equal(t, "WAON", config.Accounts.WAON.DisplayName)
	assert.Equal(t, "お財布", config.Accounts.WAON.ChargeCashSource)
	assert.False(t, config.Accounts.GoldPointCardPlus.SkipAmazonRow)
	assert.Equal(t, "三菱UFJ銀行", config.Accounts.MUFG.DisplayName)
	assert.Equal(t, "PASMO", config.Accounts.PASMO.DisplayName)
	assert.Equal(t, "モバイルSuica", config.Accounts.MobileSuica.DisplayName)
	assert.Equal(t, "Amazon Japan G.K.", config.Accounts.Amazon.StoreName)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	chdirTemp(t)

	testEnvVars := map[string]string{
		"ZAIM_LOG_LEVEL":                                    "debug",
		"ZAIM_LOG_FORMAT":                                   "json",
		"ZAIM_PATHS_OUTPUT":                                 "/tmp/zaim",
		"ZAIM_ACCOUNTS_GOLD_POINT_CARD_PLUS_SKIP_AMAZON_ROW": "true",
		"ZAIM_ACCOUNTS_PASMO_SKIP_SALES_GOODS_ROW":          "true",
		"ZAIM_ACCOUNTS_WAON_DISPLAY_NAME":                   "イオンWAON",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/tmp/zaim", config.Paths.Output)
	assert.True(t, config.Accounts.GoldPointCardPlus.SkipAmazonRow)
	assert.True(t, config.Accounts.PASMO.SkipSalesGoodsRow)
	assert.False(t, config.Accounts.MobileSuica.SkipSalesGoodsRow)
	assert.Equal(t, "イオンWAON", config.Accounts.WAON.DisplayName)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
accounts:
  mufg:
    display_name: "MUFG"
    cash_account: "財布"
  amazon:
    payment_account: "楽天カード"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "MUFG", config.Accounts.MUFG.DisplayName)
	assert.Equal(t, "財布", config.Accounts.MUFG.CashAccount)
	assert.Equal(t, "楽天カード", config.Accounts.Amazon.PaymentAccount)
	// untouched keys keep their defaults
	assert.Equal(t, "Amazon Japan G.K.", config.Accounts.Amazon.StoreName)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
paths:
  catalog: "ref"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))
	t.Setenv("ZAIM_LOG_LEVEL", "error")

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "ref", config.Paths.Catalog)
}

func TestInitializeConfig_ExplicitFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0600))

	config, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", config.Log.Format)

	_, err = InitializeConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "empty error file",
			modifyConfig: func(c *Config) { c.Paths.ErrorFile = " " },
			expectError:  "paths.error_file must not be empty",
		},
		{
			name:         "empty display name",
			modifyConfig: func(c *Config) { c.Accounts.WAON.DisplayName = "" },
			expectError:  "accounts.waon.display_name must not be empty",
		},
		{
			name:         "empty amazon payment account",
			modifyConfig: func(c *Config) { c.Accounts.Amazon.PaymentAccount = "" },
			expectError:  "accounts.amazon.payment_account must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestAccountsConfig_SFCard(t *testing.T) {
	config := validConfig()

	pasmo, ok := config.Accounts.SFCard(models.AccountPASMO)
	require.True(t, ok)
	assert.Equal(t, "PASMO", pasmo.DisplayName)

	suica, ok := config.Accounts.SFCard(models.AccountMobileSuica)
	require.True(t, ok)
	assert.Equal(t, "モバイルSuica", suica.DisplayName)

	_, ok = config.Accounts.SFCard(models.AccountWAON)
	assert.False(t, ok)
}

func TestLoadEnv(t *testing.T) {
	dir := chdirTemp(t)
	logger := logging.NewMockLogger()

	assert.Empty(t, LoadEnv(logger))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ZAIM_TEST_LOAD_ENV=loaded\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("ZAIM_TEST_LOAD_ENV") })

	assert.Equal(t, ".env", LoadEnv(logger))
	assert.Equal(t, "loaded", os.Getenv("ZAIM_TEST_LOAD_ENV"))
	assert.True(t, logger.HasEntry("DEBUG", "Loaded environment variables"))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewLogger(validConfig()))
}

func validConfig() *Config {
	return &Config{
		Log:   LogConfig{Level: "info", Format: "text"},
		Paths: PathsConfig{ErrorFile: "error.csv"},
		Accounts: AccountsConfig{
			WAON:              WAONConfig{DisplayName: "WAON", AutoChargeSource: "イオン銀行", ChargeCashSource: "お財布"},
			GoldPointCardPlus: GoldPointConfig{DisplayName: "ゴールドポイントカード・プラス"},
			MUFG:              MUFGConfig{DisplayName: "三菱UFJ銀行", CashAccount: "お財布"},
			PASMO:             SFCardConfig{DisplayName: "PASMO", AutoChargeSource: "ゴールドポイントカード・プラス"},
			MobileSuica:       SFCardConfig{DisplayName: "モバイルSuica", AutoChargeSource: "ビューカード"},
			Amazon:            AmazonConfig{StoreName: "Amazon Japan G.K.", PaymentAccount: "ゴールドポイントカード・プラス"},
		},
	}
}

// chdirTemp runs the test from an empty directory so no config.yaml or .env
// of the developer leaks into it.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}
