package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskmaster application
type Config struct {
	Database     DatabaseConfig
	Time         TimeConfig
	Validation   ValidationConfig
	Proximity    ProximityConfig
	Notification NotificationConfig
	Geocoder     GeocoderConfig
	Network      NetworkConfig
	Logging      LoggingConfig
	Application  ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TM_DB_DIR"`
	Filename       string        `env:"TM_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TM_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TM_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TM_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DateFormat string `env:"TM_DATE_FORMAT"`
	TimeFormat string `env:"TM_TIME_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"TM_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"TM_VALIDATION_TITLE_MAX"`
}

// ProximityConfig holds nearby-task alerting configuration
type ProximityConfig struct {
	ThresholdMeters float64 `env:"TM_PROXIMITY_THRESHOLD_METERS"`
}

// NotificationConfig holds notification scheduling configuration
type NotificationConfig struct {
	NearbyTriggerDelay time.Duration `env:"TM_NOTIFY_NEARBY_DELAY"`
}

// GeocoderConfig holds place search / reverse geocoding configuration
type GeocoderConfig struct {
	BaseURL   string        `env:"TM_GEOCODER_BASE_URL"`
	UserAgent string        `env:"TM_GEOCODER_USER_AGENT"`
	Timeout   time.Duration `env:"TM_GEOCODER_TIMEOUT"`
}

// NetworkConfig holds reachability probe configuration
type NetworkConfig struct {
	ProbeAddress  string        `env:"TM_NET_PROBE_ADDRESS"`
	ProbeTimeout  time.Duration `env:"TM_NET_PROBE_TIMEOUT"`
	CheckInterval time.Duration `env:"TM_NET_CHECK_INTERVAL"`
}

// LoggingConfig holds structured logging configuration
type LoggingConfig struct {
	Level    string `env:"TM_LOG_LEVEL"`
	Encoding string `env:"TM_LOG_ENCODING"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TM_APP_TIMEOUT"`
	Verbose bool          `env:"TM_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskmaster")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasks.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DateFormat: "2006-01-02",
			TimeFormat: "15:04",
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Proximity: ProximityConfig{
			ThresholdMeters: 100,
		},
		Notification: NotificationConfig{
			NearbyTriggerDelay: time.Second,
		},
		Geocoder: GeocoderConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "taskmaster/1.0",
			Timeout:   10 * time.Second,
		},
		Network: NetworkConfig{
			ProbeAddress:  "1.1.1.1:443",
			ProbeTimeout:  3 * time.Second,
			CheckInterval: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
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
	if dir := os.Getenv("TM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TM_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TM_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TM_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Time configuration
	if format := os.Getenv("TM_DATE_FORMAT"); format != "" {
		c.Time.DateFormat = format
	}
	if format := os.Getenv("TM_TIME_FORMAT"); format != "" {
		c.Time.TimeFormat = format
	}

	// Validation configuration
	if minLen := os.Getenv("TM_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TM_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Proximity configuration
	if threshold := os.Getenv("TM_PROXIMITY_THRESHOLD_METERS"); threshold != "" {
		if f, err := strconv.ParseFloat(threshold, 64); err == nil {
			c.Proximity.ThresholdMeters = f
		}
	}

	// Notification configuration
	if delay := os.Getenv("TM_NOTIFY_NEARBY_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Notification.NearbyTriggerDelay = d
		}
	}

	// Geocoder configuration
	if url := os.Getenv("TM_GEOCODER_BASE_URL"); url != "" {
		c.Geocoder.BaseURL = url
	}
	if agent := os.Getenv("TM_GEOCODER_USER_AGENT"); agent != "" {
		c.Geocoder.UserAgent = agent
	}
	if timeout := os.Getenv("TM_GEOCODER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Geocoder.Timeout = d
		}
	}

	// Network configuration
	if addr := os.Getenv("TM_NET_PROBE_ADDRESS"); addr != "" {
		c.Network.ProbeAddress = addr
	}
	if timeout := os.Getenv("TM_NET_PROBE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Network.ProbeTimeout = d
		}
	}
	if interval := os.Getenv("TM_NET_CHECK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Network.CheckInterval = d
		}
	}

	// Logging configuration
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if encoding := os.Getenv("TM_LOG_ENCODING"); encoding != "" {
		c.Logging.Encoding = encoding
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate time configuration
	if c.Time.DateFormat == "" {
		return &ConfigError{Field: "time.date_format", Message: "date format cannot be empty"}
	}
	if c.Time.TimeFormat == "" {
		return &ConfigError{Field: "time.time_format", Message: "time format cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	// Validate proximity configuration
	if c.Proximity.ThresholdMeters <= 0 {
		return &ConfigError{Field: "proximity.threshold_meters", Message: "proximity threshold must be positive"}
	}

	// Validate geocoder configuration
	if c.Geocoder.BaseURL == "" {
		return &ConfigError{Field: "geocoder.base_url", Message: "geocoder base URL cannot be empty"}
	}
	if c.Geocoder.Timeout <= 0 {
		return &ConfigError{Field: "geocoder.timeout", Message: "geocoder timeout must be positive"}
	}

	// Validate network configuration
	if c.Network.ProbeAddress == "" {
		return &ConfigError{Field: "network.probe_address", Message: "probe address cannot be empty"}
	}
	if c.Network.CheckInterval <= 0 {
		return &ConfigError{Field: "network.check_interval", Message: "check interval must be positive"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
