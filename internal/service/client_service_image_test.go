// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/mock"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

const testPlaceholder = "https://example.test/placeholder.png"

func newTestImageSvc(t *testing.T, remote adapter.RemoteStore) (*clientImageService, store.ImageCacheRepository) {
	t.Helper()
	storages := newTestStorages(t)
	svc := NewClientImageService(storages.Images, remote, config.ClientImages{
		CacheTTL:       24 * time.Hour,
		PlaceholderURL: testPlaceholder,
	}).(*clientImageService)
	svc.now = clockAt(fixedNow())
	return svc, storages.Images
}

// ── brand fallback ──────────────────────────────────────────────────────────

func TestFetchImageURL_KnownBrandSkipsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl) // no calls expected
	svc, repo := newTestImageSvc(t, remote)
	ctx := context.Background()

	url := svc.FetchImageURL(ctx, testUser, "Toyota", "Corolla", 2018)
	assert.Equal(t, brandImageBase+"toyota.png", url)

	entry, err := repo.GetCacheEntry(ctx, testUser, "toyota", "corolla", 2018)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyBrandFallback, entry.Strategy)
	assert.Equal(t, CurrentCacheVersion, entry.CacheVersion)

	st, err := repo.GetStrategy(ctx, "toyota+corolla")
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalCount)
	assert.Equal(t, 1, st.SuccessCount)
	assert.InDelta(t, 1.0, st.SuccessRate, 1e-9)
	assert.Equal(t, models.StrategyBrandFallback, st.Strategy)
}

func TestFetchImageURL_BrandAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestImageSvc(t, mock.NewMockRemoteStore(ctrl))

	assert.Equal(t, brandImageBase+"volkswagen.png", svc.FetchImageURL(context.Background(), testUser, "VW", "Golf", 2015))
	assert.Equal(t, brandImageBase+"mercedes-benz.png", svc.FetchImageURL(context.Background(), testUser, "Mercedes Benz", "E 200", 2015))
}

// ── cache ───────────────────────────────────────────────────────────────────

func TestFetchImageURL_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestImageSvc(t, mock.NewMockRemoteStore(ctrl))
	ctx := context.Background()

	cachedAt := fixedNow().Add(-time.Hour)
	require.NoError(t, repo.PutCacheEntry(ctx, models.CarImageCacheEntry{
		UserID: testUser, Make: "toyota", Model: "corolla", Year: 2018,
		ImageURL: "https://cdn.test/corolla.jpg", Strategy: models.StrategyRemoteSearch,
		CacheVersion: CurrentCacheVersion, CachedAt: cachedAt, LastAccessedAt: cachedAt,
	}))

	assert.Equal(t, "https://cdn.test/corolla.jpg", svc.FetchImageURL(ctx, testUser, "Toyota", "Corolla", 2018))

	entry, err := repo.GetCacheEntry(ctx, testUser, "toyota", "corolla", 2018)
	require.NoError(t, err)
	assert.True(t, entry.LastAccessedAt.Equal(fixedNow()))
	assert.True(t, entry.CachedAt.Equal(cachedAt))

	// попадание в кэш не трогает статистику
	_, err = repo.GetStrategy(ctx, "toyota+corolla")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFetchImageURL_InvalidEntryIsReplaced(t *testing.T) {
	tests := []struct {
		name     string
		version  int
		cachedAt time.Time
	}{
		{name: "old version", version: 3, cachedAt: fixedNow().Add(-time.Hour)},
		{name: "expired", version: CurrentCacheVersion, cachedAt: fixedNow().Add(-48 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestImageSvc(t, mock.NewMockRemoteStore(ctrl))
			ctx := context.Background()

			require.NoError(t, repo.PutCacheEntry(ctx, models.CarImageCacheEntry{
				UserID: testUser, Make: "toyota", Model: "corolla", Year: 2018,
				ImageURL: "https://cdn.test/stale.jpg", Strategy: models.StrategyRemoteSearch,
				CacheVersion: tt.version, CachedAt: tt.cachedAt, LastAccessedAt: tt.cachedAt,
			}))

			assert.Equal(t, brandImageBase+"toyota.png", svc.FetchImageURL(ctx, testUser, "Toyota", "Corolla", 2018))

			entry, err := repo.GetCacheEntry(ctx, testUser, "toyota", "corolla", 2018)
			require.NoError(t, err)
			assert.Equal(t, CurrentCacheVersion, entry.CacheVersion)
			assert.True(t, entry.CachedAt.Equal(fixedNow()))
		})
	}
}

// ── remote search ───────────────────────────────────────────────────────────

func TestFetchImageURL_UnknownBrandUsesRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().LookupCarImage(gomock.Any(), "Zaporozhets", "968M", 1985).
		Return(models.CarImage{URL: "https://cdn.test/zaz.jpg", Source: "search"}, nil)

	svc, repo := newTestImageSvc(t, remote)
	ctx := context.Background()

	assert.Equal(t, "https://cdn.test/zaz.jpg", svc.FetchImageURL(ctx, testUser, "Zaporozhets", "968M", 1985))

	entry, err := repo.GetCacheEntry(ctx, testUser, "zaporozhets", "968m", 1985)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyRemoteSearch, entry.Strategy)

	// второй вызов обслуживается из кэша
	assert.Equal(t, "https://cdn.test/zaz.jpg", svc.FetchImageURL(ctx, testUser, "Zaporozhets", "968M", 1985))
}

func TestFetchImageURL_SpellingVariantsShareCacheEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	// одна сетевая загрузка на все варианты написания
	remote.EXPECT().LookupCarImage(gomock.Any(), "Zaporozhets", "968M", 1985).
		Return(models.CarImage{URL: "https://cdn.test/zaz.jpg", Source: "search"}, nil).Times(1)

	svc, repo := newTestImageSvc(t, remote)
	ctx := context.Background()

	for _, name := range [][2]string{{"Zaporozhets", "968M"}, {"zaporozhets", "968m"}, {" ZAPOROZHETS ", "968M"}} {
		assert.Equal(t, "https://cdn.test/zaz.jpg", svc.FetchImageURL(ctx, testUser, name[0], name[1], 1985))
	}

	entry, err := repo.GetCacheEntry(ctx, testUser, "zaporozhets", "968m", 1985)
	require.NoError(t, err)
	assert.Equal(t, "zaporozhets", entry.Make)
	assert.Equal(t, "968m", entry.Model)

	_, err = repo.GetCacheEntry(ctx, testUser, "Zaporozhets", "968M", 1985)
	assert.ErrorIs(t, err, store.ErrNotFound)

	st, err := repo.GetStrategy(ctx, "zaporozhets+968m")
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalCount)
}

func TestFetchImageURL_PlaceholderIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().LookupCarImage(gomock.Any(), "Zaporozhets", "968M", 1985).
		Return(models.CarImage{}, adapter.ErrServiceUnavailable).Times(2)

	svc, repo := newTestImageSvc(t, remote)
	ctx := context.Background()

	assert.Equal(t, testPlaceholder, svc.FetchImageURL(ctx, testUser, "Zaporozhets", "968M", 1985))

	_, err := repo.GetCacheEntry(ctx, testUser, "zaporozhets", "968m", 1985)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, testPlaceholder, svc.FetchImageURL(ctx, testUser, "Zaporozhets", "968M", 1985))

	st, err := repo.GetStrategy(ctx, "zaporozhets+968m")
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalCount)
	assert.Zero(t, st.SuccessCount)
	assert.Zero(t, st.SuccessRate)
}

func TestFetchImageURL_ProvenRemoteStrategyGoesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().LookupCarImage(gomock.Any(), "Toyota", "Corolla", 2018).
		Return(models.CarImage{URL: "https://cdn.test/corolla.jpg"}, nil)

	svc, repo := newTestImageSvc(t, remote)
	ctx := context.Background()

	require.NoError(t, repo.PutStrategy(ctx, models.ImageFetchStrategy{
		Key: "toyota+corolla", Strategy: models.StrategyRemoteSearch,
		SuccessCount: 9, TotalCount: 10, SuccessRate: 0.9, AvgLatencyMs: 100, UpdatedAt: fixedNow(),
	}))

	assert.Equal(t, "https://cdn.test/corolla.jpg", svc.FetchImageURL(ctx, testUser, "Toyota", "Corolla", 2018))

	st, err := repo.GetStrategy(ctx, "toyota+corolla")
	require.NoError(t, err)
	assert.Equal(t, 11, st.TotalCount)
	assert.Equal(t, 10, st.SuccessCount)
	assert.InDelta(t, 10.0/11.0, st.SuccessRate, 1e-9)
	// (100 + 0) / 2
	assert.InDelta(t, 50.0, st.AvgLatencyMs, 1e-9)
}

func TestFetchImageURL_WeakRemoteStrategyKeepsDefaultOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestImageSvc(t, mock.NewMockRemoteStore(ctrl))
	ctx := context.Background()

	require.NoError(t, repo.PutStrategy(ctx, models.ImageFetchStrategy{
		Key: "toyota+corolla", Strategy: models.StrategyRemoteSearch,
		SuccessCount: 1, TotalCount: 2, SuccessRate: 0.5, UpdatedAt: fixedNow(),
	}))

	assert.Equal(t, brandImageBase+"toyota.png", svc.FetchImageURL(ctx, testUser, "Toyota", "Corolla", 2018))
}

func TestStrategyKey(t *testing.T) {
	assert.Equal(t, "land-rover+range-rover", strategyKey("Land  Rover", " Range Rover "))
	assert.Equal(t, "toyota+corolla", strategyKey("TOYOTA", "corolla"))
}
