package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATA_SOURCE", "SERVER_PORT", "CORS_ORIGINS", "DB_URL", "RABBITMQ_URL",
		"IMPORT_INTERVAL", "GITHUB_TOKEN", "MIGRATIONS_URL", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, "data/repositories.json", cfg.DataSource)
	assert.Equal(t, ":8000", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.ImportInterval)
	assert.Equal(t, "file://migrations", cfg.MigrationsURL)
	assert.False(t, cfg.Debug)
	assert.Error(t, cfg.RequireDB())
	assert.Error(t, cfg.RequireRabbitMQ())
}

func TestLoadConfiguration_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "s3://orb/repositories.json")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://orb.ucop.edu, http://localhost:3000")
	t.Setenv("DB_URL", "postgres://localhost/orb")
	t.Setenv("IMPORT_INTERVAL", "15m")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, "s3://orb/repositories.json", cfg.DataSource)
	assert.Equal(t, ":9090", cfg.ServerPort)
	assert.Equal(t, []string{"https://orb.ucop.edu", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.ImportInterval)
	assert.True(t, cfg.Debug)
	assert.NoError(t, cfg.RequireDB())
}

func TestLoadConfiguration_Errors(t *testing.T) {
	t.Run("bad interval", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMPORT_INTERVAL", "hourly")

		_, err := LoadConfiguration()
		assert.ErrorContains(t, err, "IMPORT_INTERVAL")
	})

	t.Run("postgres source without DB_URL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATA_SOURCE", DataSourcePostgres)

		_, err := LoadConfiguration()
		assert.ErrorContains(t, err, "DB_URL")
	})
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, ParseOrigins(""))
	assert.Equal(t, []string{"*"}, ParseOrigins(" , "))
	assert.Equal(t, []string{"a", "b"}, ParseOrigins("a,,b "))
}
