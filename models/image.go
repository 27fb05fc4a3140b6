// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Image fetch strategies recorded in the cache and strategy table.
const (
	StrategyBrandFallback = "brand_fallback"
	StrategyRemoteSearch  = "remote_search"
)

// CarImageCacheEntry is a cached image URL for (user, make, model, year).
// It never leaves the device.
type CarImageCacheEntry struct {
	UserID         string
	Make           string
	Model          string
	Year           int
	ImageURL       string
	Strategy       string
	LatencyMs      int64
	CacheVersion   int
	CachedAt       time.Time
	LastAccessedAt time.Time
}

// ImageFetchStrategy holds running statistics of how well a strategy works
// for one normalized make+model key.
type ImageFetchStrategy struct {
	Key          string
	Strategy     string
	SuccessCount int
	TotalCount   int
	SuccessRate  float64
	AvgLatencyMs float64
	UpdatedAt    time.Time
}

// CarImage is the server answer to an image lookup.
type CarImage struct {
	Make   string `json:"make"`
	Model  string `json:"model"`
	Year   int    `json:"year"`
	URL    string `json:"url"`
	Source string `json:"source"`
}
