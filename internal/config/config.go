package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Picker PickerConfig `mapstructure:"picker"`
	Log    LogConfig    `mapstructure:"log"`
}

// PickerConfig represents date picker configuration
type PickerConfig struct {
	ID           string `mapstructure:"id"`            // Trigger identifier of the form field
	YearEdge     int    `mapstructure:"year_edge"`     // Distance to the excluded ends of the year window
	Spillover    string `mapstructure:"spillover"`     // "carry" or "navigated"
	HolidaysFile string `mapstructure:"holidays_file"` // Optional day marks, YYYY-MM-DD type [note]
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file.
// A missing file is not an error when optional is true; defaults apply.
func Load(configPath string, optional bool) (*Config, error) {
	v := viper.New()

	v.SetDefault("picker.id", "date")
	v.SetDefault("picker.year_edge", 500)
	v.SetDefault("picker.spillover", "carry")
	v.SetDefault("picker.holidays_file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datepicker")
	}

	// Read environment variables, e.g. DATEPICKER_PICKER_SPILLOVER.
	// Only keys with a default are seen by Unmarshal.
	v.SetEnvPrefix("datepicker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || !optional {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Picker.ID == "" {
		return fmt.Errorf("picker.id is required")
	}
	if c.Picker.YearEdge <= 0 {
		return fmt.Errorf("picker.year_edge must be positive")
	}

	switch c.Picker.Spillover {
	case "", "carry", "navigated":
	default:
		return fmt.Errorf("picker.spillover must be 'carry' or 'navigated', got '%s'", c.Picker.Spillover)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetLogLevel returns the log level, "info" when unset
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Picker.HolidaysFile = os.ExpandEnv(c.Picker.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
