// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks source-independent invariants of the merged config.
// Role-specific requirements live in validateServer and ClientConfig.validate.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxAttempts < 0 {
		return fmt.Errorf("%w: negative max attempts", ErrInvalidWorkerConfigs)
	}

	if cfg.Storage.DB.Driver != "" && !isSQLiteDriver(cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown sqlite driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ReminderInterval <= 0 || cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.MaxAttempts <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func isSQLiteDriver(name string) bool {
	return name == "sqlite3" || name == "sqlite"
}
