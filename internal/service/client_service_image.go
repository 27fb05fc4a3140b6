// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

const (
	// CurrentCacheVersion invalidates every entry written by an older
	// resolution scheme.
	CurrentCacheVersion = 5

	// preferredStrategyRate is the success rate above which a key's best
	// strategy is tried first.
	preferredStrategyRate = 0.7

	brandImageBase = "https://static.autobrain.app/img/brands/"
)

// brandImages maps a normalized make to its fallback picture.
var brandImages = map[string]string{
	"audi":          brandImageBase + "audi.png",
	"bmw":           brandImageBase + "bmw.png",
	"chevrolet":     brandImageBase + "chevrolet.png",
	"ford":          brandImageBase + "ford.png",
	"honda":         brandImageBase + "honda.png",
	"hyundai":       brandImageBase + "hyundai.png",
	"kia":           brandImageBase + "kia.png",
	"lada":          brandImageBase + "lada.png",
	"lexus":         brandImageBase + "lexus.png",
	"mazda":         brandImageBase + "mazda.png",
	"mercedes-benz": brandImageBase + "mercedes-benz.png",
	"mitsubishi":    brandImageBase + "mitsubishi.png",
	"nissan":        brandImageBase + "nissan.png",
	"renault":       brandImageBase + "renault.png",
	"skoda":         brandImageBase + "skoda.png",
	"subaru":        brandImageBase + "subaru.png",
	"tesla":         brandImageBase + "tesla.png",
	"toyota":        brandImageBase + "toyota.png",
	"volkswagen":    brandImageBase + "volkswagen.png",
	"volvo":         brandImageBase + "volvo.png",
}

var brandAliases = map[string]string{
	"mercedes": "mercedes-benz",
	"vw":       "volkswagen",
	"chevy":    "chevrolet",
}

type clientImageService struct {
	repo        store.ImageCacheRepository
	remote      adapter.RemoteStore
	ttl         time.Duration
	placeholder string
	now         func() time.Time
}

func NewClientImageService(repo store.ImageCacheRepository, remote adapter.RemoteStore, cfg config.ClientImages) ClientImageService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = config.DefaultImageCacheTTL
	}
	placeholder := cfg.PlaceholderURL
	if placeholder == "" {
		placeholder = config.DefaultPlaceholderURL
	}

	return &clientImageService{
		repo:        repo,
		remote:      remote,
		ttl:         ttl,
		placeholder: placeholder,
		now:         time.Now,
	}
}

func (s *clientImageService) FetchImageURL(ctx context.Context, userID, carMake, carModel string, year int) string {
	log := logger.FromContext(ctx).With().
		Str("make", carMake).
		Str("model", carModel).
		Int("year", year).
		Logger()

	// the cache is keyed by spelling-insensitive names, like the strategies
	cacheMake, cacheModel := normalize(carMake), normalize(carModel)

	entry, err := s.repo.GetCacheEntry(ctx, userID, cacheMake, cacheModel, year)
	switch {
	case err == nil && s.valid(entry):
		if err := s.repo.TouchCacheEntry(ctx, userID, cacheMake, cacheModel, year, s.now()); err != nil {
			log.Warn().Err(err).Msg("failed to touch image cache entry")
		}
		return entry.ImageURL
	case err == nil:
		if err := s.repo.DeleteCacheEntry(ctx, userID, cacheMake, cacheModel, year); err != nil {
			log.Warn().Err(err).Msg("failed to drop stale image cache entry")
		}
	case !errors.Is(err, store.ErrNotFound):
		log.Warn().Err(err).Msg("image cache read failed")
	}

	key := strategyKey(carMake, carModel)
	for _, strategy := range s.strategyOrder(ctx, key) {
		started := s.now()
		url, attempted := s.resolve(ctx, strategy, carMake, carModel, year)
		if !attempted {
			continue
		}
		latency := s.now().Sub(started)
		s.recordAttempt(ctx, key, strategy, url != "", latency)

		if url == "" {
			continue
		}

		now := s.now()
		err := s.repo.PutCacheEntry(ctx, models.CarImageCacheEntry{
			UserID:         userID,
			Make:           cacheMake,
			Model:          cacheModel,
			Year:           year,
			ImageURL:       url,
			Strategy:       strategy,
			LatencyMs:      latency.Milliseconds(),
			CacheVersion:   CurrentCacheVersion,
			CachedAt:       now,
			LastAccessedAt: now,
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to cache car image")
		}
		return url
	}

	log.Debug().Msg("no car image resolved, using placeholder")
	return s.placeholder
}

// valid reports whether a cache entry may be served.
func (s *clientImageService) valid(e models.CarImageCacheEntry) bool {
	return e.CacheVersion == CurrentCacheVersion && s.now().Sub(e.CachedAt) < s.ttl
}

// strategyOrder puts a proven strategy of the key first; otherwise the brand
// table is tried before the remote search.
func (s *clientImageService) strategyOrder(ctx context.Context, key string) []string {
	order := []string{models.StrategyBrandFallback, models.StrategyRemoteSearch}

	st, err := s.repo.GetStrategy(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("strategy lookup failed")
		}
		return order
	}
	if st.SuccessRate > preferredStrategyRate && st.Strategy == models.StrategyRemoteSearch {
		return []string{models.StrategyRemoteSearch, models.StrategyBrandFallback}
	}
	return order
}

// resolve runs one strategy. attempted is false when the strategy does not
// apply to the car at all.
func (s *clientImageService) resolve(ctx context.Context, strategy, carMake, carModel string, year int) (url string, attempted bool) {
	switch strategy {
	case models.StrategyBrandFallback:
		url, ok := brandImageURL(carMake)
		return url, ok
	case models.StrategyRemoteSearch:
		img, err := s.remote.LookupCarImage(ctx, carMake, carModel, year)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("make", carMake).Str("model", carModel).Msg("remote image lookup failed")
			return "", true
		}
		return img.URL, true
	}
	return "", false
}

// recordAttempt folds one attempt into the key's statistics. The success
// rate is recomputed from the counters, the latency is averaged with the
// previous value and Strategy follows the last strategy that worked.
func (s *clientImageService) recordAttempt(ctx context.Context, key, strategy string, ok bool, latency time.Duration) {
	log := logger.FromContext(ctx)

	st, err := s.repo.GetStrategy(ctx, key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Warn().Err(err).Str("key", key).Msg("strategy lookup failed")
		return
	}

	ms := float64(latency.Milliseconds())
	if st.TotalCount == 0 {
		st = models.ImageFetchStrategy{Key: key, AvgLatencyMs: ms}
	} else {
		st.AvgLatencyMs = (st.AvgLatencyMs + ms) / 2
	}
	st.TotalCount++
	if ok {
		st.SuccessCount++
		st.Strategy = strategy
	} else if st.Strategy == "" {
		st.Strategy = strategy
	}
	st.SuccessRate = float64(st.SuccessCount) / float64(st.TotalCount)
	st.UpdatedAt = s.now()

	if err := s.repo.PutStrategy(ctx, st); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to store strategy stats")
	}
}

func strategyKey(carMake, carModel string) string {
	return normalize(carMake) + "+" + normalize(carModel)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

func brandImageURL(carMake string) (string, bool) {
	brand := normalize(carMake)
	if alias, ok := brandAliases[brand]; ok {
		brand = alias
	}
	url, ok := brandImages[brand]
	return url, ok
}
