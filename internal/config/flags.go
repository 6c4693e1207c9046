package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base URL (e.g. "https://vault.example.com")
//	-d local database path
//	-c/-config json file path with configs
//	-session-idle idle timeout before the session locks (e.g., "5m")
//	-clipboard-clear clipboard lifetime for copied secrets (e.g., "30s")
//	-request-timeout outbound request timeout (e.g., "15s")
//	-watchdog-interval session watchdog tick interval (e.g., "5s")
//	-kdf-time Argon2id pass count
//	-kdf-memory-kib Argon2id memory cost in KiB
//	-kdf-threads Argon2id parallelism degree
func ParseFlags() *StructuredConfig {
	var serverBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var sessionIdle time.Duration
	var clipboardClear time.Duration
	var requestTimeout time.Duration
	var watchdogInterval time.Duration
	var kdfTime uint
	var kdfMemoryKiB uint
	var kdfThreads uint

	flag.StringVar(&serverBaseURL, "s", "http://localhost:8080", "Server base URL")
	flag.StringVar(&databaseDSN, "d", "passvault.db", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&sessionIdle, "session-idle", 5*time.Minute, "Idle timeout before session locks (e.g., 5m)")
	flag.DurationVar(&clipboardClear, "clipboard-clear", 30*time.Second, "Clipboard lifetime for copied secrets (e.g., 30s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 15*time.Second, "Request timeout (e.g., 15s)")
	flag.DurationVar(&watchdogInterval, "watchdog-interval", 5*time.Second, "Session watchdog tick interval (e.g., 5s)")
	flag.UintVar(&kdfTime, "kdf-time", 0, "Argon2id pass count (0 = built-in default)")
	flag.UintVar(&kdfMemoryKiB, "kdf-memory-kib", 0, "Argon2id memory cost in KiB (0 = built-in default)")
	flag.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id parallelism degree (0 = built-in default)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionIdle:    sessionIdle,
			ClipboardClear: clipboardClear,
			KDF: KDF{
				Time:      uint32(kdfTime),
				MemoryKiB: uint32(kdfMemoryKiB),
				Threads:   uint8(kdfThreads),
			},
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        serverBaseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			WatchdogInterval: watchdogInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
