package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// minSecretLength is the shortest JWT secret accepted in production
const minSecretLength = 32

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration for the environment named by GT_ENV.
// Values come from configs/<env>.yaml when present, then GT_* environment
// variables, with .env files loaded into the environment first.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return loadConfig(getEnvironment(), ConfigPaths)
}

func loadConfig(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("GT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 5)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.slowQueryThreshold", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.issuer", "gift-tracker")
	v.SetDefault("auth.tokenTTL", 720)
	v.SetDefault("auth.bcryptCost", bcrypt.DefaultCost)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")
}

// getEnvironment determines the environment from GT_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("GT_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the documented GT_* variables win over file values.
// Their names do not follow the nested key layout, so AutomaticEnv misses them.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"GT_DB_DRIVER":       "database.driver",
		"GT_DB_HOST":         "database.host",
		"GT_DB_PORT":         "database.port",
		"GT_DB_USERNAME":     "database.username",
		"GT_DB_PASSWORD":     "database.password",
		"GT_DB_NAME":         "database.database",
		"GT_DB_SSL_MODE":     "database.sslMode",
		"GT_SERVER_HOST":     "server.host",
		"GT_SERVER_PORT":     "server.port",
		"GT_LOGGER_LEVEL":    "logger.level",
		"GT_JWT_SECRET":      "auth.jwtSecret",
		"GT_ADMIN_USERNAME":  "admin.username",
		"GT_ADMIN_PASSWORD":  "admin.password",
		"GT_LOGGER_FORMAT":   "logger.format",
		"GT_SERVER_GIN_MODE": "server.mode",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"GT_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"GT_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"GT_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"GT_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"GT_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"GT_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"GT_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"GT_AUTH_TOKEN_TTL_MINUTES":        "auth.tokenTTL",
		"GT_AUTH_BCRYPT_COST":              "auth.bcryptCost",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the plain numbers read from the file into
// durations, using the unit documented on each field
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowQueryThreshold = time.Duration(config.Database.SlowQueryThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required (set GT_JWT_SECRET)")
	}
	if c.Environment == Production && len(c.Auth.JWTSecret) < minSecretLength {
		return fmt.Errorf("auth.jwtSecret must be at least %d characters in production", minSecretLength)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
