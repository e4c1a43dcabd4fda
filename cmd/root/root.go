// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/container"
	"fjacquet/zaim-csv/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "zaim-csv",
		Short: "A CLI tool to convert Japanese account statements into Zaim import CSV files.",
		Long: `zaim-csv converts the CSV exports of WAON, GOLD POINT CARD+, MUFG,
PASMO, Mobile Suica and Amazon.co.jp into the CSV format imported by Zaim.

Store and item names are mapped to Zaim categories through reference catalog
files, one per account. Names missing from a catalog are listed in error.csv.`,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	configFile string
	logLevel   string
	logFormat  string

	appConfig    *config.Config
	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory")
	Cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default searches $HOME/.zaim-csv, .zaim-csv and .)")
	Cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

// initialize loads the configuration and builds the logger. Flags take
// precedence over the config file and the environment.
func initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	appConfig = cfg
	appContainer = nil
	Log = config.NewLogger(cfg)
	Log.Debug("Configuration loaded", logging.F("command", cmd.Name()))
	return nil
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() (*config.Config, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return appConfig, nil
}

// GetContainer returns the dependency container. The reference catalog is
// loaded on first use, so commands that do not convert never read it.
func GetContainer() (*container.Container, error) {
	if appContainer != nil {
		return appContainer, nil
	}
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	c, err := container.NewContainer(cfg, Log)
	if err != nil {
		return nil, err
	}
	appContainer = c
	return c, nil
}
