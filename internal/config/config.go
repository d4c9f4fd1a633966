// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the platform adapter
	// selected at startup.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeouts of the remote document store
	// and identity provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds key-derivation and cipher-suite parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Session holds session lifetime settings.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds cron schedules of the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Platform names the platform storage adapter: "sqlite", "bolt" or
	// "memory".
	// Env: APP_PLATFORM
	Platform string `env:"PLATFORM"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the remote collaborators.
type Adapter struct {
	// HTTPAddress is the base address of the vault API, either "host:port"
	// or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthPath is probed to decide whether the network is reachable.
	// Env: ADAPTER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the SQLite database settings used by the sqlite platform.
	DB DB `envPrefix:"DB_"`

	// Bolt holds the bbolt file settings used by the bolt platform.
	Bolt Bolt `envPrefix:"BOLT_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Bolt holds settings for the bbolt key/value file.
type Bolt struct {
	// Path is the bbolt database file path.
	// Env: STORAGE_BOLT_PATH
	Path string `env:"PATH"`
}

// Crypto holds cryptographic parameters.
type Crypto struct {
	// CipherSuite is "aes-256-gcm" or "xchacha20-poly1305".
	// Env: CRYPTO_CIPHER_SUITE
	CipherSuite string `env:"CIPHER_SUITE"`

	// ArgonTime is the Argon2id iteration count.
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemory is the Argon2id memory cost in KiB.
	// Env: CRYPTO_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`

	// ArgonThreads is the Argon2id parallelism.
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Session holds session lifetime settings.
type Session struct {
	// Timeout is the lifetime of a regular session.
	// Env: SESSION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RememberMeTimeout is the lifetime of a "remember me" session.
	// Env: SESSION_REMEMBER_ME_TIMEOUT
	RememberMeTimeout time.Duration `env:"REMEMBER_ME_TIMEOUT"`
}

// Workers holds cron specifications of background jobs.
type Workers struct {
	// ExpiryCheckSpec schedules the session expiry sweep.
	// Env: WORKERS_EXPIRY_CHECK_SPEC
	ExpiryCheckSpec string `env:"EXPIRY_CHECK_SPEC"`

	// RefreshSpec schedules the credential cache refresh.
	// Env: WORKERS_REFRESH_SPEC
	RefreshSpec string `env:"REFRESH_SPEC"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
