package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_USER_NAME", "assetz")
	os.Setenv("DB_SCHEMA", "assetz")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("SECRET_KEY_ENV", "topsecret")
	os.Setenv("AWS_S3_BUCKET_NAME", "assetz-media")
	os.Setenv("DEBUG", "true")
	defer func() {
		os.Unsetenv("DB_USER_NAME")
		os.Unsetenv("DB_SCHEMA")
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("SECRET_KEY_ENV")
		os.Unsetenv("AWS_S3_BUCKET_NAME")
		os.Unsetenv("DEBUG")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, "assetz", cfg.Database.User)
	assert.Equal(t, "assetz", cfg.Database.Schema)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "topsecret", cfg.Auth.SecretKey)
	assert.Equal(t, "assetz-media", cfg.Storage.Bucket)
	assert.True(t, cfg.Server.Debug)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("WORKERS")
	os.Unsetenv("TOKEN_TTL_HOURS")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Server.Workers)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 12, cfg.Auth.TokenTTLHours)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
