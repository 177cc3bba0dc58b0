package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the momentum application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Upcoming    UpcomingConfig
	Application ApplicationConfig
	Logging     LoggingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `env:"MM_DB_DIR"`
	Filename string `env:"MM_DB_FILENAME"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"MM_DISPLAY_DATE_FORMAT"`
	TimeFormat string `env:"MM_DISPLAY_TIME_FORMAT"`
}

// UpcomingConfig holds defaults for the upcoming-tasks window
type UpcomingConfig struct {
	HorizonDays int `env:"MM_UPCOMING_DAYS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"MM_APP_TIMEOUT"`
	Verbose bool          `env:"MM_APP_VERBOSE"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Development bool `env:"MM_LOG_DEV"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".momentum")

	return &Config{
		Database: DatabaseConfig{
			Dir:      defaultDBDir,
			Filename: "momentum.db",
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
			TimeFormat: "2006-01-02 15:04",
		},
		Upcoming: UpcomingConfig{
			HorizonDays: 7,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
		Logging: LoggingConfig{
			Development: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("MM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("MM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}

	// Display configuration
	if format := os.Getenv("MM_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if format := os.Getenv("MM_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	// Upcoming configuration
	if days := os.Getenv("MM_UPCOMING_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Upcoming.HorizonDays = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("MM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("MM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Logging configuration
	if dev := os.Getenv("MM_LOG_DEV"); dev != "" {
		if b, err := strconv.ParseBool(dev); err == nil {
			c.Logging.Development = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Upcoming.HorizonDays < 1 {
		return &ConfigError{Field: "upcoming.horizon_days", Message: "upcoming horizon must be at least 1 day"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// Load builds the effective configuration: defaults overridden by
// environment variables, then validated. Command-line flags are applied
// on top by the CLI layer.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
