// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// IDToken is the bearer token presented to the remote store.
	IDToken string
	// HashKey keys the document integrity header.
	HashKey string
	// LogLevel and LogPath configure the client logger.
	LogLevel string
	LogPath  string
	// GaragePath lists the cars of the dashboard.
	GaragePath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store address.
	HTTPAddress string
	// RequestTimeout bounds collection requests.
	RequestTimeout time.Duration
	// ImageTimeout bounds car image lookups.
	ImageTimeout time.Duration
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
	// Driver is "sqlite3" or "sqlite".
	Driver string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains scheduler settings.
type ClientWorkers struct {
	SyncInterval     time.Duration
	ReminderInterval time.Duration
	CleanupInterval  time.Duration
	MaxAttempts      int
	BackoffBase      time.Duration
}

// ClientLLM contains the assessment model settings.
type ClientLLM struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ClientImages contains device image cache settings.
type ClientImages struct {
	CacheTTL       time.Duration
	PlaceholderURL string
}

// ClientDevice contains the static device conditions.
type ClientDevice struct {
	Metered    bool
	BatteryLow bool
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	LLM     ClientLLM
	Images  ClientImages
	Device  ClientDevice
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			IDToken:    cfg.App.IDToken,
			HashKey:    cfg.App.HashKey,
			LogLevel:   cfg.App.LogLevel,
			LogPath:    cfg.App.LogPath,
			GaragePath: cfg.App.GaragePath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ImageTimeout:   cfg.Adapter.ImageTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Driver: cfg.Storage.DB.Driver,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			ReminderInterval: cfg.Workers.ReminderInterval,
			CleanupInterval:  cfg.Workers.CleanupInterval,
			MaxAttempts:      cfg.Workers.MaxAttempts,
			BackoffBase:      cfg.Workers.BackoffBase,
		},
		LLM: ClientLLM{
			Endpoint: cfg.LLM.Endpoint,
			APIKey:   cfg.LLM.APIKey,
			Model:    cfg.LLM.Model,
			Timeout:  cfg.LLM.Timeout,
		},
		Images: ClientImages{
			CacheTTL:       cfg.Images.CacheTTL,
			PlaceholderURL: cfg.Images.PlaceholderURL,
		},
		Device: ClientDevice{
			Metered:    cfg.Device.Metered,
			BatteryLow: cfg.Device.BatteryLow,
		},
	}
}
