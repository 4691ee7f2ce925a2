package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, StorageDisk, cfg.StorageDriver)
	assert.False(t, cfg.SeedDemoData)
	// Development falls back to the insecure built-in secret.
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.SeedDemoData)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "explicit")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, "explicit", cfg.JWTSecret)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", getEnv("TEST_STR", "def"))
	assert.Equal(t, "def", getEnv("TEST_STR_MISSING", "def"))

	t.Setenv("TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))

	t.Setenv("TEST_BOOL", "1")
	assert.True(t, getEnvBool("TEST_BOOL", false))
}
