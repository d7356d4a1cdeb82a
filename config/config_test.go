package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "PORT", "STORAGE_BACKEND", "API_KEY_PREFIX", "CORS_ORIGINS",
		"MAIL_PROVIDER", "MAIL_FROM_ADDRESS", "MAIL_FROM_NAME",
		"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"ARGON2_MEMORY_KIB", "ARGON2_TIME", "ARGON2_THREADS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "ms_test_", cfg.APIKeyPrefix)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "noop", cfg.MailProvider)
	assert.Equal(t, "meetSpace", cfg.MailFromName)
	assert.Contains(t, cfg.DBUrl, "localhost:5432/meetspace")
	assert.Zero(t, cfg.Argon2MemoryKiB)
	assert.Zero(t, cfg.Argon2Threads)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("API_KEY_PREFIX", "ms_live_")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("MAIL_PROVIDER", "ses")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("ARGON2_MEMORY_KIB", "19456")
	t.Setenv("ARGON2_TIME", "2")
	t.Setenv("ARGON2_THREADS", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, "ms_live_", cfg.APIKeyPrefix)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "ses", cfg.MailProvider)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, uint32(19456), cfg.Argon2MemoryKiB)
	assert.Equal(t, uint32(2), cfg.Argon2Time)
	assert.Equal(t, uint8(1), cfg.Argon2Threads)
}

func TestLoad_ProductionHasNoDefaultOrigin(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown backend", "STORAGE_BACKEND", "sqlite", "STORAGE_BACKEND"},
		{"negative memory", "ARGON2_MEMORY_KIB", "-1", "ARGON2_MEMORY_KIB"},
		{"non numeric time", "ARGON2_TIME", "three", "ARGON2_TIME"},
		{"threads overflow", "ARGON2_THREADS", "256", "ARGON2_THREADS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GO_ENV", "production")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "production", "")
		logger.Info("hello", "k", "v")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "v", line["k"])
	})

	t.Run("development writes text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "development", "")
		logger.Info("hello")
		assert.True(t, strings.Contains(buf.String(), "msg=hello"))
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "development", "warn")
		logger.Info("dropped")
		assert.Empty(t, buf.String())
		logger.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
