// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after every other source.
const (
	DefaultSQLiteDriver     = "sqlite3"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultImageTimeout     = 15 * time.Second
	DefaultSyncInterval     = 2 * time.Hour
	DefaultReminderInterval = 6 * time.Hour
	DefaultCleanupInterval  = 24 * time.Hour
	DefaultJobMaxAttempts   = 3
	DefaultBackoffBase      = 30 * time.Second
	DefaultImageCacheTTL    = 7 * 24 * time.Hour
	DefaultRedisTTL         = 24 * time.Hour
	DefaultPresignExpiry    = 15 * time.Minute
	DefaultTokenIssuer      = "autobrain"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultLLMModel         = "gemini-1.5-flash"
	DefaultPlaceholderURL   = "https://static.autobrain.app/img/car-placeholder.png"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{Driver: DefaultSQLiteDriver},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			ImageTimeout:   DefaultImageTimeout,
		},
		Workers: Workers{
			SyncInterval:     DefaultSyncInterval,
			ReminderInterval: DefaultReminderInterval,
			CleanupInterval:  DefaultCleanupInterval,
			MaxAttempts:      DefaultJobMaxAttempts,
			BackoffBase:      DefaultBackoffBase,
		},
		LLM: LLM{
			Model:   DefaultLLMModel,
			Timeout: DefaultRequestTimeout,
		},
		Images: Images{
			CacheTTL:       DefaultImageCacheTTL,
			PlaceholderURL: DefaultPlaceholderURL,
		},
		Cache: Cache{
			TTL: DefaultRedisTTL,
		},
		S3: S3{
			PresignExpiry: DefaultPresignExpiry,
		},
	}
}
