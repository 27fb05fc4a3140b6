// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllGroups(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/etc/autobrain.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "autobrain-test",
		"APP_TOKEN_DURATION": "1h",
		"APP_ID_TOKEN":       "id-token",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":       "http://localhost:8080",
		"ADAPTER_IMAGE_TIMEOUT": "15s",

		"STORAGE_DB_DATABASE_URI": "/var/lib/autobrain/local.db",
		"STORAGE_DB_DRIVER":       "sqlite",

		"WORKERS_SYNC_INTERVAL": "2h",
		"WORKERS_MAX_ATTEMPTS":  "3",

		"LLM_ENDPOINT": "https://llm.example.com",
		"LLM_API_KEY":  "llm-key",

		"CACHE_REDIS_ADDRESS": "localhost:6379",
		"S3_BUCKET":           "car-documents",
		"DEVICE_METERED":      "true",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "/etc/autobrain.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "autobrain-test", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "id-token", cfg.App.IDToken)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.ImageTimeout)
	assert.Equal(t, "/var/lib/autobrain/local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Workers.SyncInterval)
	assert.Equal(t, 3, cfg.Workers.MaxAttempts)
	assert.Equal(t, "https://llm.example.com", cfg.LLM.Endpoint)
	assert.Equal(t, "llm-key", cfg.LLM.APIKey)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddress)
	assert.Equal(t, "car-documents", cfg.S3.Bucket)
	assert.True(t, cfg.Device.Metered)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "soon")

	err := parseEnv(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidEnvConfigs)
}
