// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

// searchResponse is the subset of the upstream image search answer we read.
type searchResponse struct {
	Items []struct {
		Link        string `json:"link"`
		DisplayLink string `json:"displayLink"`
	} `json:"items"`
}

type imageService struct {
	http      *utils.HTTPClient
	searchURL string
	apiKey    string
	cache     store.ImageCache
	validator validators.Validator

	logger *logger.Logger
}

// NewImageService builds the upstream image search client. An empty
// cfg.SearchURL disables lookups; every call then reports ErrImageNotFound.
func NewImageService(cfg config.Images, timeout time.Duration, cache store.ImageCache, logger *logger.Logger) ImageService {
	if timeout <= 0 {
		timeout = config.DefaultImageTimeout
	}

	return &imageService{
		http:      utils.NewHTTPClient(timeout),
		searchURL: cfg.SearchURL,
		apiKey:    cfg.SearchAPIKey,
		cache:     cache,
		validator: validators.NewEntityValidator(),
		logger:    logger,
	}
}

func (s *imageService) LookupCarImage(ctx context.Context, carMake, carModel string, year int) (models.CarImage, error) {
	log := logger.FromContext(ctx)

	car := models.Car{Make: carMake, Model: carModel, Year: year}
	if err := s.validator.Validate(ctx, car, validators.FieldCar); err != nil {
		return models.CarImage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key := store.ImageCacheKey(carMake, carModel, year)
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Warn().Err(err).Str("key", key).Msg("image cache read failed")
	}

	image, err := s.search(ctx, carMake, carModel, year)
	if err != nil {
		return models.CarImage{}, err
	}

	if err := s.cache.Set(ctx, key, image); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("image cache write failed")
	}
	return image, nil
}

func (s *imageService) search(ctx context.Context, carMake, carModel string, year int) (models.CarImage, error) {
	if s.searchURL == "" {
		return models.CarImage{}, ErrImageNotFound
	}

	var result searchResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":          fmt.Sprintf("%s %s %d car", carMake, carModel, year),
			"searchType": "image",
			"num":        "1",
			"key":        s.apiKey,
		}).
		SetResult(&result).
		Get(s.searchURL)
	if err != nil {
		return models.CarImage{}, fmt.Errorf("%w: %w", ErrImageUpstreamFailed, err)
	}
	if resp.IsError() {
		logger.FromContext(ctx).Warn().
			Int("status", resp.StatusCode()).
			Str("make", carMake).
			Str("model", carModel).
			Msg("image search answered with error")
		return models.CarImage{}, fmt.Errorf("%w: status %s", ErrImageUpstreamFailed, strconv.Itoa(resp.StatusCode()))
	}

	for _, item := range result.Items {
		if item.Link == "" {
			continue
		}
		return models.CarImage{
			Make:   carMake,
			Model:  carModel,
			Year:   year,
			URL:    item.Link,
			Source: item.DisplayLink,
		}, nil
	}
	return models.CarImage{}, ErrImageNotFound
}
