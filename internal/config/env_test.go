// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_IDLE":    "10m",
		"APP_CLIPBOARD_CLEAR": "45s",
		"APP_KDF_TIME":        "2",
		"APP_KDF_MEMORY_KIB":  "131072",
		"APP_KDF_THREADS":     "8",

		"ADAPTER_BASE_URL":        "https://vault.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.passvault/cache.db",

		"WORKERS_WATCHDOG_INTERVAL": "3s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 10*time.Minute, cfg.App.SessionIdle)
	assert.Equal(t, 45*time.Second, cfg.App.ClipboardClear)
	assert.Equal(t, uint32(2), cfg.App.KDF.Time)
	assert.Equal(t, uint32(131072), cfg.App.KDF.MemoryKiB)
	assert.Equal(t, uint8(8), cfg.App.KDF.Threads)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/home/user/.passvault/cache.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 3*time.Second, cfg.Workers.WatchdogInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_SESSION_IDLE": "2m",
		"ADAPTER_BASE_URL": "http://localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.App.SessionIdle)
	assert.Zero(t, cfg.App.ClipboardClear)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SESSION_IDLE": "not-a-duration"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
