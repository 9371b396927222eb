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

		"APP_DEVICE_MODEL":           "pixel",
		"APP_VERSION":                "7.80",
		"APP_TOKEN_SIGN_KEY":         "jwt_secret",
		"APP_TOKEN_ISSUER":           "test_issuer",
		"APP_ACCESS_TOKEN_DURATION":  "15m",
		"APP_REFRESH_TOKEN_DURATION": "720h",
		"APP_HASH_KEY":               "refresh_hash",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "https://sync.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"WORKERS_SYNC_INTERVAL":   "5m",
		"SYNC_DOMAIN_TIMEOUT":     "1m",
		"SYNC_TOKEN_REFRESH_SKEW": "2m",

		"ACCOUNT_LOGIN":    "user@example.com",
		"ACCOUNT_PASSWORD": "secret",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "file:podsync.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "pixel", cfg.App.DeviceModel)
	assert.Equal(t, "7.80", cfg.App.Version)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 720*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, "refresh_hash", cfg.App.HashKey)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://sync.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Minute, cfg.Sync.DomainTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Sync.TokenRefreshSkew)

	assert.Equal(t, "user@example.com", cfg.Account.Login)
	assert.Equal(t, "secret", cfg.Account.Password)

	assert.Equal(t, "file:podsync.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.AccessTokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SYNC_DOMAIN_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── helpers ───────────────────────────────────────────────────────────────────

var configEnvVars = []string{
	"CONFIG",
	"APP_DEVICE_MODEL", "APP_VERSION", "APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER",
	"APP_ACCESS_TOKEN_DURATION", "APP_REFRESH_TOKEN_DURATION", "APP_HASH_KEY",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
	"WORKERS_SYNC_INTERVAL", "SYNC_DOMAIN_TIMEOUT", "SYNC_TOKEN_REFRESH_SKEW",
	"ACCOUNT_LOGIN", "ACCOUNT_PASSWORD",
	"STORAGE_DB_DATABASE_URI",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
