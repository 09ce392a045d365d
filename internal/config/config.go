// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// session-wallet application. It is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the vault namespace and backing store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds key-derivation cost parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Session holds session lifetime settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogDir is the directory the client log file is written to. Empty means
	// the directory of the executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Storage groups the vault namespace and backing store configuration.
type Storage struct {
	// Prefix is prepended to every vault key. Read once when the vault is
	// constructed.
	// Env: STORAGE_PREFIX
	Prefix string `env:"PREFIX"`

	// Backend selects the volatile session store: "memory", "badger" or
	// "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// MaxValueBytes caps the size of a single stored value. Writes above the
	// cap fail the way a browser session store fails on quota.
	// Env: STORAGE_MAX_VALUE_BYTES
	MaxValueBytes int `env:"MAX_VALUE_BYTES"`

	// DB holds the sqlite session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sqlite session backend.
type DB struct {
	// DSN is the sqlite data source name (file path).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Crypto holds the cost parameters of the two key-derivation functions used
// by the application.
type Crypto struct {
	// ArgonTime is the Argon2id iteration count used to derive the vault key
	// from the session secret.
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemoryKiB is the Argon2id memory cost in KiB.
	// Env: CRYPTO_ARGON_MEMORY_KIB
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB"`

	// ArgonThreads is the Argon2id parallelism.
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`

	// ScryptN is the scrypt CPU/memory cost of generated keystores.
	// Env: CRYPTO_SCRYPT_N
	ScryptN int `env:"SCRYPT_N"`

	// ScryptP is the scrypt parallelism of generated keystores.
	// Env: CRYPTO_SCRYPT_P
	ScryptP int `env:"SCRYPT_P"`
}

// Session holds session lifetime settings.
type Session struct {
	// IdleTimeout clears the vault after this long without user activity.
	// Zero disables the idle job.
	// Env: SESSION_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// Defaults returns the built-in configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Prefix:        "wallet.",
			Backend:       BackendMemory,
			MaxValueBytes: 5 << 20,
		},
		Crypto: Crypto{
			ArgonTime:      1,
			ArgonMemoryKiB: 64 * 1024,
			ArgonThreads:   4,
			ScryptN:        1 << 18,
			ScryptP:        1,
		},
		Session: Session{
			IdleTimeout: 15 * time.Minute,
		},
	}
}

// Supported values of [Storage.Backend].
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
