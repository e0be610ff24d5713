package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver             string
	Host               string
	Port               int
	Username           string
	Password           string
	Database           string // database name for postgres, file path for sqlite
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	SlowQueryThreshold time.Duration
	LogLevel           string
	RetryAttempts      int
	RetryDelay         time.Duration
	MonitorInterval    time.Duration
}

// DefaultConfig returns a Config with default values.
// No credentials are hardcoded; they come from GT_DB_* environment variables.
func DefaultConfig() *Config {
	return &Config{
		Driver:             configEnvOrDefault("GT_DB_DRIVER", DriverPostgres),
		Host:               configEnv("GT_DB_HOST"),
		Port:               configEnvAsInt("GT_DB_PORT", 5432),
		Username:           configEnv("GT_DB_USERNAME"),
		Password:           configEnv("GT_DB_PASSWORD"),
		Database:           configEnv("GT_DB_NAME"),
		SSLMode:            configEnvOrDefault("GT_DB_SSL_MODE", "disable"),
		MaxOpenConns:       configEnvAsInt("GT_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:       configEnvAsInt("GT_DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime:    time.Duration(configEnvAsInt("GT_DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		ConnMaxIdleTime:    time.Duration(configEnvAsInt("GT_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:       time.Duration(configEnvAsInt("GT_DB_QUERY_TIMEOUT_SECONDS", 5)) * time.Second,
		SlowQueryThreshold: 200 * time.Millisecond,
		LogLevel:           configEnvOrDefault("GT_LOGGER_LEVEL", "info"),
		RetryAttempts:      configEnvAsInt("GT_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:         time.Duration(configEnvAsInt("GT_DB_RETRY_DELAY_SECONDS", 1)) * time.Second,
		MonitorInterval:    30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if err := c.validatePostgres(); err != nil {
			return err
		}
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("sqlite database path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validatePostgres() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// DSN returns the database connection string. SQLite connections always
// enable foreign keys, which the cascading deletes rely on.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Database + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// configEnv gets a value from environment variables with no default
func configEnv(key string) string {
	return os.Getenv(key)
}

// configEnvOrDefault gets a value from environment variables with a default value
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt gets an integer value from environment variables with a default
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
