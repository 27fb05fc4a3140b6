// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig in the layout of the JSON
// config file. Durations accept both "30s" strings and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		IDToken       string   `json:"id_token"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		LogPath       string   `json:"log_path"`
		GaragePath    string   `json:"garage_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ImageTimeout   Duration `json:"image_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		ReminderInterval Duration `json:"reminder_interval"`
		CleanupInterval  Duration `json:"cleanup_interval"`
		MaxAttempts      int      `json:"max_attempts"`
		BackoffBase      Duration `json:"backoff_base"`
	} `json:"workers,omitempty"`

	LLM struct {
		Endpoint string   `json:"endpoint"`
		APIKey   string   `json:"api_key"`
		Model    string   `json:"model"`
		Timeout  Duration `json:"timeout"`
	} `json:"llm,omitempty"`

	Images struct {
		SearchURL      string   `json:"search_url"`
		SearchAPIKey   string   `json:"search_api_key"`
		CacheTTL       Duration `json:"cache_ttl"`
		PlaceholderURL string   `json:"placeholder_url"`
	} `json:"images,omitempty"`

	Cache struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		TTL           Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	S3 struct {
		Bucket        string   `json:"bucket"`
		Region        string   `json:"region"`
		Endpoint      string   `json:"endpoint"`
		AccessKey     string   `json:"access_key"`
		SecretKey     string   `json:"secret_key"`
		PresignExpiry Duration `json:"presign_expiry"`
	} `json:"s3,omitempty"`

	Device struct {
		Metered    bool `json:"metered"`
		BatteryLow bool `json:"battery_low"`
	} `json:"device,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			IDToken:       j.App.IDToken,
			HashKey:       j.App.HashKey,
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
			LogPath:       j.App.LogPath,
			GaragePath:    j.App.GaragePath,
		},
		Storage: Storage{
			DB: DB{
				DSN:    j.Storage.DB.DSN,
				Driver: j.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			ImageTimeout:   time.Duration(j.Adapter.ImageTimeout),
		},
		Workers: Workers{
			SyncInterval:     time.Duration(j.Workers.SyncInterval),
			ReminderInterval: time.Duration(j.Workers.ReminderInterval),
			CleanupInterval:  time.Duration(j.Workers.CleanupInterval),
			MaxAttempts:      j.Workers.MaxAttempts,
			BackoffBase:      time.Duration(j.Workers.BackoffBase),
		},
		LLM: LLM{
			Endpoint: j.LLM.Endpoint,
			APIKey:   j.LLM.APIKey,
			Model:    j.LLM.Model,
			Timeout:  time.Duration(j.LLM.Timeout),
		},
		Images: Images{
			SearchURL:      j.Images.SearchURL,
			SearchAPIKey:   j.Images.SearchAPIKey,
			CacheTTL:       time.Duration(j.Images.CacheTTL),
			PlaceholderURL: j.Images.PlaceholderURL,
		},
		Cache: Cache{
			RedisAddress:  j.Cache.RedisAddress,
			RedisPassword: j.Cache.RedisPassword,
			RedisDB:       j.Cache.RedisDB,
			TTL:           time.Duration(j.Cache.TTL),
		},
		S3: S3{
			Bucket:        j.S3.Bucket,
			Region:        j.S3.Region,
			Endpoint:      j.S3.Endpoint,
			AccessKey:     j.S3.AccessKey,
			SecretKey:     j.S3.SecretKey,
			PresignExpiry: time.Duration(j.S3.PresignExpiry),
		},
		Device: Device{
			Metered:    j.Device.Metered,
			BatteryLow: j.Device.BatteryLow,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
