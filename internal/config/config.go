// Package config loads the converter configuration and prepares the process
// environment it is read from.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"fjacquet/zaim-csv/internal/logging"
)

// LoadEnv loads environment variables from a .env file if one exists in the
// working directory or its parent. Variables already set are not overridden.
// Returns the file that was loaded, or "" when none was found.
func LoadEnv(logger logging.Logger) string {
	logger = logging.OrDefault(logger)

	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, envFile))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
		return envFile
	}
	return ""
}

// NewLogger builds the logrus backed logger described by the configuration.
func NewLogger(config *Config) logging.Logger {
	if config == nil {
		return logging.NewLogrusAdapter("info", "text")
	}
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
