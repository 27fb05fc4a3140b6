// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/models"
)

const imageCachePrefix = "autobrain:car_image:"

type redisImageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewImageCache connects to Redis. An empty address yields a cache that
// never hits.
func NewImageCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (ImageCache, error) {
	if cfg.RedisAddress == "" {
		log.Info().Msg("redis address is empty, image cache disabled")
		return noopImageCache{}, nil
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = config.DefaultRedisTTL
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddress,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("addr", cfg.RedisAddress).Dur("ttl", ttl).Msg("image cache connected")
	return &redisImageCache{rdb: rdb, ttl: ttl}, nil
}

// ImageCacheKey builds the cache key of a make/model/year triple. Case and
// inner whitespace are ignored.
func ImageCacheKey(carMake, carModel string, year int) string {
	norm := func(s string) string { return strings.Join(strings.Fields(strings.ToLower(s)), "-") }
	return imageCachePrefix + norm(carMake) + ":" + norm(carModel) + ":" + strconv.Itoa(year)
}

func (c *redisImageCache) Get(ctx context.Context, key string) (models.CarImage, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.CarImage{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisImageCache.Get").Str("key", key).Msg("redis get failed")
		return models.CarImage{}, fmt.Errorf("%w: %w", ErrRetryable, err)
	}

	var image models.CarImage
	if err := json.Unmarshal(raw, &image); err != nil {
		// a corrupt value is treated as a miss and overwritten later
		return models.CarImage{}, ErrNotFound
	}
	return image, nil
}

func (c *redisImageCache) Set(ctx context.Context, key string, image models.CarImage) error {
	raw, err := json.Marshal(image)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisImageCache.Set").Str("key", key).Msg("redis set failed")
		return fmt.Errorf("%w: %w", ErrRetryable, err)
	}
	return nil
}

func (c *redisImageCache) Close() error {
	return c.rdb.Close()
}

type noopImageCache struct{}

func (noopImageCache) Get(context.Context, string) (models.CarImage, error) {
	return models.CarImage{}, ErrNotFound
}

func (noopImageCache) Set(context.Context, string, models.CarImage) error { return nil }

func (noopImageCache) Close() error { return nil }
