package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("STORAGE_BACKEND")
		os.Unsetenv("STORAGE_LOCAL_DIR")
		os.Unsetenv("APP_TIMEZONE")

		cfg := Load()

		assert.Equal(t, BackendLocal, cfg.Storage.Backend)
		assert.Equal(t, "generated", cfg.Storage.LocalDir)
		assert.Equal(t, "UTC", cfg.Timezone)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("environment overrides", func(t *testing.T) {
		os.Setenv("STORAGE_BACKEND", "s3")
		os.Setenv("STORAGE_LOCAL_DIR", "/tmp/docs")
		os.Setenv("DB_HOST", "test-host")
		os.Setenv("DB_MAX_OPEN_CONNS", "20")
		os.Setenv("MINIO_USE_SSL", "true")
		defer func() {
			os.Unsetenv("STORAGE_BACKEND")
			os.Unsetenv("STORAGE_LOCAL_DIR")
			os.Unsetenv("DB_HOST")
			os.Unsetenv("DB_MAX_OPEN_CONNS")
			os.Unsetenv("MINIO_USE_SSL")
		}()

		cfg := Load()

		assert.Equal(t, BackendS3, cfg.Storage.Backend)
		assert.Equal(t, "/tmp/docs", cfg.Storage.LocalDir)
		assert.Equal(t, "test-host", cfg.Database.Host)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.True(t, cfg.MinIO.UseSSL)
	})
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
