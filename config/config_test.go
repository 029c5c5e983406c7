package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RECIPE_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "recipes", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.RatingRateLimit)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RECIPE_JWT_SECRET", "test-secret")
	t.Setenv("RECIPE_SERVER_PORT", "9090")
	t.Setenv("RECIPE_DB_HOST", "db.internal")
	t.Setenv("RECIPE_DB_NAME", "cookbook")
	t.Setenv("RECIPE_JWT_TTL", "1h")
	t.Setenv("RECIPE_REDIS_HOST", "cache.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "cookbook", cfg.DBName)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.RedisEnabled())
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("RECIPE_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECIPE_JWT_SECRET")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "recipes",
		DBSSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=recipes")
	assert.Contains(t, dsn, "sslmode=disable")
}
