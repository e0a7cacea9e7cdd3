// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"trackexpense/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TRACKEXPENSE_LOG_LEVEL.
const EnvPrefix = "TRACKEXPENSE"

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ReportConfig holds the report defaults.
type ReportConfig struct {
	// MileageRate is kept as text so the configured rate stays exact.
	MileageRate string `mapstructure:"mileage_rate" yaml:"mileage_rate"`
	CardLabel   string `mapstructure:"card_label" yaml:"card_label"`
	Language    string `mapstructure:"language" yaml:"language"`
}

// ExportConfig selects the output format and location.
type ExportConfig struct {
	Format       string `mapstructure:"format" yaml:"format"`
	Directory    string `mapstructure:"directory" yaml:"directory"`
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
}

// StoreConfig selects the expense backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// AIConfig configures receipt analysis.
type AIConfig struct {
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	Model          string `mapstructure:"model" yaml:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
	Store  StoreConfig  `mapstructure:"store" yaml:"store"`
	AI     AIConfig     `mapstructure:"ai" yaml:"ai"`
}

// Supported enumerations, duplicated here so that config stays a leaf package.
var (
	validLanguages = []string{"en", "es", "fr"}
	validFormats   = []string{"xlsx", "csv", "text"}
	validBackends  = []string{"yaml", "sqlite"}
)

// InitializeConfig loads configuration from the standard locations.
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load initializes Viper configuration with hierarchical loading. A non-empty
// configFile replaces the search of the standard locations.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.trackexpense")
		v.AddConfigPath(".trackexpense")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key is read from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("report.mileage_rate", "0.427")
	v.SetDefault("report.card_label", "CMO Valves")
	v.SetDefault("report.language", "en")

	v.SetDefault("export.format", "xlsx")
	v.SetDefault("export.directory", ".")
	v.SetDefault("export.csv_delimiter", ",")

	v.SetDefault("store.backend", "yaml")
	v.SetDefault("store.path", "expenses.yaml")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(config.Report.MileageRate))
	if err != nil {
		return fmt.Errorf("invalid report.mileage_rate: %s", config.Report.MileageRate)
	}
	if rate.IsNegative() {
		return fmt.Errorf("report.mileage_rate must not be negative, got: %s", config.Report.MileageRate)
	}
	if !oneOf(config.Report.Language, validLanguages) {
		return fmt.Errorf("unsupported report.language: %s (must be one of %s)",
			config.Report.Language, strings.Join(validLanguages, ", "))
	}

	if !oneOf(config.Export.Format, validFormats) {
		return fmt.Errorf("unsupported export.format: %s (must be one of %s)",
			config.Export.Format, strings.Join(validFormats, ", "))
	}
	if utf8.RuneCountInString(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	if !oneOf(config.Store.Backend, validBackends) {
		return fmt.Errorf("unknown store.backend: %s (must be 'yaml' or 'sqlite')", config.Store.Backend)
	}
	if strings.TrimSpace(config.Store.Path) == "" {
		return fmt.Errorf("store.path must not be empty")
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// MileageRate returns the configured rate. Validated configs always parse.
func (c *Config) MileageRate() decimal.Decimal {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.Report.MileageRate))
	if err != nil {
		return decimal.Zero
	}
	return rate
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// AITimeout returns the receipt analysis timeout.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
