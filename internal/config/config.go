// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// AutoBrain client and the remote store server. It is populated by merging
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity, token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings (SQLite on the device,
	// PostgreSQL on the server).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address of the remote store server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side settings for reaching the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the periodic job settings of the client scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// LLM holds the assessment model endpoint.
	LLM LLM `envPrefix:"LLM_"`

	// Images holds the car image lookup settings.
	Images Images `envPrefix:"IMAGES_"`

	// Cache holds the server-side Redis cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// S3 holds the object storage used for car document binaries.
	S3 S3 `envPrefix:"S3_"`

	// Device holds the static device conditions checked by job constraints.
	Device Device `envPrefix:"DEVICE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey signs and verifies ID tokens (HS256).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the server.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// IDToken is the bearer token the client presents to the server.
	// Env: APP_ID_TOKEN
	IDToken string `env:"ID_TOKEN"`

	// HashKey keys the HMAC integrity header on document uploads.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPath is the client log file.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// GaragePath is the JSON file listing the cars shown by the client
	// dashboard.
	// Env: APP_GARAGE_PATH
	GaragePath string `env:"GARAGE_PATH"`
}

// Storage groups database settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN is a PostgreSQL URL on the server or a SQLite file path on the device.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the SQLite driver on the device: "sqlite3"
	// (mattn/go-sqlite3) or "sqlite" (modernc.org/sqlite).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound client transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote store server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds collection reads and writes.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ImageTimeout bounds a single car image lookup.
	// Env: ADAPTER_IMAGE_TIMEOUT
	ImageTimeout time.Duration `env:"IMAGE_TIMEOUT"`
}

// Workers holds the client scheduler settings.
type Workers struct {
	SyncInterval     time.Duration `env:"SYNC_INTERVAL"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL"`

	// MaxAttempts is the number of tries of one job run.
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffBase is the first delay of the exponential backoff.
	BackoffBase time.Duration `env:"BACKOFF_BASE"`
}

// LLM holds the assessment model endpoint.
type LLM struct {
	Endpoint string        `env:"ENDPOINT"`
	APIKey   string        `env:"API_KEY"`
	Model    string        `env:"MODEL"`
	Timeout  time.Duration `env:"TIMEOUT"`
}

// Images holds car image lookup settings.
type Images struct {
	// SearchURL is the upstream image search API used by the server.
	SearchURL string `env:"SEARCH_URL"`
	// SearchAPIKey authenticates against SearchURL.
	SearchAPIKey string `env:"SEARCH_API_KEY"`
	// CacheTTL is the lifetime of a device cache entry.
	CacheTTL time.Duration `env:"CACHE_TTL"`
	// PlaceholderURL is returned when every strategy fails.
	PlaceholderURL string `env:"PLACEHOLDER_URL"`
}

// Cache holds the server-side Redis settings. An empty address disables
// the cache.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	TTL           time.Duration `env:"TTL"`
}

// S3 holds the object storage used for car document binaries.
type S3 struct {
	Bucket        string        `env:"BUCKET"`
	Region        string        `env:"REGION"`
	Endpoint      string        `env:"ENDPOINT"`
	AccessKey     string        `env:"ACCESS_KEY"`
	SecretKey     string        `env:"SECRET_KEY"`
	PresignExpiry time.Duration `env:"PRESIGN_EXPIRY"`
}

// Device holds the static device conditions.
type Device struct {
	// Metered marks the current network as metered.
	Metered bool `env:"METERED"`
	// BatteryLow marks the battery as low.
	BatteryLow bool `env:"BATTERY_LOW"`
}

// GetStructuredConfig loads and merges the configuration from all sources:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Earlier sources take precedence for non-zero fields.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig loads the structured config and checks the settings the
// remote store server cannot start without.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
