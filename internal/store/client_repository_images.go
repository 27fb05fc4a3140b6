// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/models"
)

const (
	imageCacheTable    = "car_image_cache"
	imageStrategyTable = "image_fetch_strategies"
)

var (
	imageCacheColumns = []string{
		"user_id", "make", "model", "year", "image_url", "strategy", "latency_ms",
		"cache_version", "cached_at", "last_accessed_at",
	}
	imageStrategyColumns = []string{
		"strategy_key", "strategy", "success_count", "total_count", "success_rate",
		"avg_latency_ms", "updated_at",
	}
)

type imageCacheRepository struct {
	*DB
}

func NewImageCacheRepository(db *DB) ImageCacheRepository {
	return &imageCacheRepository{DB: db}
}

func cacheKey(userID, carMake, carModel string, year int) sq.Eq {
	return sq.Eq{"user_id": userID, "make": carMake, "model": carModel, "year": year}
}

func (r *imageCacheRepository) GetCacheEntry(ctx context.Context, userID, carMake, carModel string, year int) (models.CarImageCacheEntry, error) {
	query, args, err := r.builder.Select(imageCacheColumns...).
		From(imageCacheTable).
		Where(cacheKey(userID, carMake, carModel, year)).
		ToSql()
	if err != nil {
		return models.CarImageCacheEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		e                  models.CarImageCacheEntry
		cachedAt, accessed int64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&e.UserID, &e.Make, &e.Model, &e.Year, &e.ImageURL, &e.Strategy, &e.LatencyMs,
		&e.CacheVersion, &cachedAt, &accessed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CarImageCacheEntry{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "imageCacheRepository.GetCacheEntry").
			Str("make", carMake).
			Str("model", carModel).
			Int("year", year).
			Msg("failed to scan cache entry")
		return models.CarImageCacheEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	e.CachedAt = fromMillis(cachedAt)
	e.LastAccessedAt = fromMillis(accessed)

	return e, nil
}

func (r *imageCacheRepository) PutCacheEntry(ctx context.Context, e models.CarImageCacheEntry) error {
	query, args, err := r.builder.Insert(imageCacheTable).
		Columns(imageCacheColumns...).
		Values(e.UserID, e.Make, e.Model, e.Year, e.ImageURL, e.Strategy, e.LatencyMs,
			e.CacheVersion, toMillis(e.CachedAt), toMillis(e.LastAccessedAt)).
		Suffix(`ON CONFLICT(user_id, make, model, year) DO UPDATE SET
			image_url = excluded.image_url,
			strategy = excluded.strategy,
			latency_ms = excluded.latency_ms,
			cache_version = excluded.cache_version,
			cached_at = excluded.cached_at,
			last_accessed_at = excluded.last_accessed_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execLogged(ctx, "imageCacheRepository.PutCacheEntry", query, args)
}

func (r *imageCacheRepository) DeleteCacheEntry(ctx context.Context, userID, carMake, carModel string, year int) error {
	query, args, err := r.builder.Delete(imageCacheTable).
		Where(cacheKey(userID, carMake, carModel, year)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execLogged(ctx, "imageCacheRepository.DeleteCacheEntry", query, args)
}

func (r *imageCacheRepository) TouchCacheEntry(ctx context.Context, userID, carMake, carModel string, year int, at time.Time) error {
	query, args, err := r.builder.Update(imageCacheTable).
		Set("last_accessed_at", toMillis(at)).
		Where(cacheKey(userID, carMake, carModel, year)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execLogged(ctx, "imageCacheRepository.TouchCacheEntry", query, args)
}

func (r *imageCacheRepository) DeleteInvalidCacheEntries(ctx context.Context, currentVersion int, cachedBefore time.Time) (int64, error) {
	query, args, err := r.builder.Delete(imageCacheTable).
		Where(sq.Or{
			sq.NotEq{"cache_version": currentVersion},
			sq.Lt{"cached_at": toMillis(cachedBefore)},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "imageCacheRepository.DeleteInvalidCacheEntries").Msg("failed to evict cache entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res.RowsAffected()
}

func (r *imageCacheRepository) GetStrategy(ctx context.Context, key string) (models.ImageFetchStrategy, error) {
	query, args, err := r.builder.Select(imageStrategyColumns...).
		From(imageStrategyTable).
		Where(sq.Eq{"strategy_key": key}).
		ToSql()
	if err != nil {
		return models.ImageFetchStrategy{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s         models.ImageFetchStrategy
		updatedAt int64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&s.Key, &s.Strategy, &s.SuccessCount, &s.TotalCount, &s.SuccessRate, &s.AvgLatencyMs, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ImageFetchStrategy{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "imageCacheRepository.GetStrategy").Str("key", key).Msg("failed to scan strategy")
		return models.ImageFetchStrategy{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	s.UpdatedAt = fromMillis(updatedAt)

	return s, nil
}

func (r *imageCacheRepository) PutStrategy(ctx context.Context, s models.ImageFetchStrategy) error {
	query, args, err := r.builder.Insert(imageStrategyTable).
		Columns(imageStrategyColumns...).
		Values(s.Key, s.Strategy, s.SuccessCount, s.TotalCount, s.SuccessRate, s.AvgLatencyMs, toMillis(s.UpdatedAt)).
		Suffix(`ON CONFLICT(strategy_key) DO UPDATE SET
			strategy = excluded.strategy,
			success_count = excluded.success_count,
			total_count = excluded.total_count,
			success_rate = excluded.success_rate,
			avg_latency_ms = excluded.avg_latency_ms,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execLogged(ctx, "imageCacheRepository.PutStrategy", query, args)
}

func (r *imageCacheRepository) execLogged(ctx context.Context, fn, query string, args []any) error {
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
