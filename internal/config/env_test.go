// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PLATFORM": "bolt",
		"APP_VERSION":  "1.2.3",

		"ADAPTER_ADDRESS":         "localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_HEALTH_PATH":     "/healthz",

		"STORAGE_DB_DATABASE_URI": "/tmp/vault.db",
		"STORAGE_BOLT_PATH":       "/tmp/vault.bolt",

		"CRYPTO_CIPHER_SUITE":  "xchacha20-poly1305",
		"CRYPTO_ARGON_TIME":    "3",
		"CRYPTO_ARGON_MEMORY":  "32768",
		"CRYPTO_ARGON_THREADS": "2",

		"SESSION_TIMEOUT":             "10m",
		"SESSION_REMEMBER_ME_TIMEOUT": "72h",

		"WORKERS_EXPIRY_CHECK_SPEC": "@every 30s",
		"WORKERS_REFRESH_SPEC":      "*/5 * * * *",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, PlatformBolt, cfg.App.Platform)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/healthz", cfg.Adapter.HealthPath)

	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/vault.bolt", cfg.Storage.Bolt.Path)

	assert.Equal(t, "xchacha20-poly1305", cfg.Crypto.CipherSuite)
	assert.Equal(t, uint32(3), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.ArgonMemory)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)

	assert.Equal(t, 10*time.Minute, cfg.Session.Timeout)
	assert.Equal(t, 72*time.Hour, cfg.Session.RememberMeTimeout)

	assert.Equal(t, "@every 30s", cfg.Workers.ExpiryCheckSpec)
	assert.Equal(t, "*/5 * * * *", cfg.Workers.RefreshSpec)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_PLATFORM":    "memory",
		"ADAPTER_ADDRESS": "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, PlatformMemory, cfg.App.Platform)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	// Others untouched
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Session{}, cfg.Session)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_ExplicitEnvironment(t *testing.T) {
	t.Setenv("APP_PLATFORM", "sqlite")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{
		"APP_PLATFORM":    "memory",
		"SESSION_TIMEOUT": "5m",
	})

	require.NoError(t, err)
	assert.Equal(t, PlatformMemory, cfg.App.Platform, "process environment is ignored")
	assert.Equal(t, 5*time.Minute, cfg.Session.Timeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SESSION_TIMEOUT": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_PLATFORM",
		"APP_VERSION",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_HEALTH_PATH",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_BOLT_PATH",

		"CRYPTO_CIPHER_SUITE",
		"CRYPTO_ARGON_TIME",
		"CRYPTO_ARGON_MEMORY",
		"CRYPTO_ARGON_THREADS",

		"SESSION_TIMEOUT",
		"SESSION_REMEMBER_ME_TIMEOUT",

		"WORKERS_EXPIRY_CHECK_SPEC",
		"WORKERS_REFRESH_SPEC",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
