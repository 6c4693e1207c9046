// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// passvault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session lifetime,
	// clipboard behaviour, and key derivation cost parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the server endpoint and timeout settings used by the
	// outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// lifecycle and key derivation cost.
type App struct {
	// SessionIdle is how long an unlocked session survives without user
	// activity before every cached key is discarded (e.g. "5m").
	// Env: APP_SESSION_IDLE
	SessionIdle time.Duration `env:"SESSION_IDLE"`

	// ClipboardClear is how long a copied secret stays on the system
	// clipboard before it is overwritten (e.g. "30s").
	// Env: APP_CLIPBOARD_CLEAR
	ClipboardClear time.Duration `env:"CLIPBOARD_CLEAR"`

	// KDF holds Argon2id cost parameters for master key derivation.
	KDF KDF `envPrefix:"KDF_"`
}

// KDF holds Argon2id cost parameters. Zero values mean the built-in
// defaults; raising them hardens derivation at the cost of unlock latency.
type KDF struct {
	// Time is the number of Argon2id passes.
	// Env: APP_KDF_TIME
	Time uint32 `env:"TIME"`

	// MemoryKiB is the Argon2id memory cost in KiB.
	// Env: APP_KDF_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`

	// Threads is the Argon2id parallelism degree.
	// Env: APP_KDF_THREADS
	Threads uint8 `env:"THREADS"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used for the local encrypted item cache
	// (e.g. "passvault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the server endpoint configuration for the outbound HTTP
// transport.
type Adapter struct {
	// BaseURL is the base URL of the passvault server
	// (e.g. "https://vault.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// WatchdogInterval is how often the session watchdog checks the idle
	// deadline (e.g. "5s").
	// Env: WORKERS_WATCHDOG_INTERVAL
	WatchdogInterval time.Duration `env:"WATCHDOG_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
