package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 20
database:
  driver: sqlite
  database: /tmp/gift.db
  connMaxLifetime: 10
logger:
  level: debug
  format: console
auth:
  jwtSecret: file-secret
  tokenTTL: 60
  bcryptCost: 4
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_FileValues(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)

	cfg, err := loadConfig(Test, []string{dir})
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)
	t.Setenv("GT_JWT_SECRET", "env-secret")
	t.Setenv("GT_SERVER_PORT", "7070")
	t.Setenv("GT_DB_MAX_OPEN_CONNS", "3")
	t.Setenv("GT_ADMIN_PASSWORD", "s3cret")

	cfg, err := loadConfig(Test, []string{dir})
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GT_JWT_SECRET", "env-secret")

	cfg, err := loadConfig("staging", []string{t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	_, err := loadConfig("staging", []string{t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwtSecret")
}

func TestValidate_ProductionSecretLength(t *testing.T) {
	cfg := &Config{
		Environment: Production,
		Server:      ServerConfig{Port: 8080},
		Database:    DatabaseConfig{Driver: "postgres"},
		Auth:        AuthConfig{JWTSecret: "short", TokenTTL: time.Hour, BcryptCost: 10},
	}
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsProduction())
}

func TestValidate_BcryptCost(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "sqlite"},
		Auth:     AuthConfig{JWTSecret: "x", TokenTTL: time.Hour, BcryptCost: 2},
	}
	assert.Error(t, cfg.Validate())
}
