// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/models"
)

// HashHeader carries the hex HMAC-SHA256 of a document body.
const HashHeader = "HashSHA256"

type httpRemoteStore struct {
	client *utils.HTTPClient

	hashKey      string
	imageTimeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the HTTP/REST implementation of
// [RemoteStore]. adapterCfg.HTTPAddress may omit the scheme; http is
// assumed. appCfg.IDToken, when set, is used as the initial bearer token.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	imageTimeout := adapterCfg.ImageTimeout
	if imageTimeout <= 0 {
		imageTimeout = config.DefaultImageTimeout
	}

	h := &httpRemoteStore{
		client:       client,
		hashKey:      appCfg.HashKey,
		imageTimeout: imageTimeout,
		logger:       logger,
	}
	h.SetToken(appCfg.IDToken)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// PutDocument sends body as is; the integrity header is computed over the
// exact bytes on the wire.
func (h *httpRemoteStore) PutDocument(ctx context.Context, collection, id string, body any) (models.RemoteDocument, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return models.RemoteDocument{}, fmt.Errorf("encode document %s/%s: %w", collection, id, err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashBytes(payload, h.hashKey))
	}

	resp, err := req.Put("/api/v1/collections/{collection}/{id}")
	if err != nil {
		return models.RemoteDocument{}, fmt.Errorf("%w: put document request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteDocument{}, err
	}

	var doc models.RemoteDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.RemoteDocument{}, fmt.Errorf("%w: put document: %w", ErrDecodingResponse, err)
	}

	h.logger.Debug().
		Str("func", "httpRemoteStore.PutDocument").
		Str("collection", collection).
		Str("id", id).
		Msg("document stored")

	return doc, nil
}

func (h *httpRemoteStore) ListDocuments(ctx context.Context, collection string) ([]models.RemoteDocument, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("collection", collection).
		Get("/api/v1/collections/{collection}")
	if err != nil {
		return nil, fmt.Errorf("%w: list documents request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.DocumentList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("%w: list documents: %w", ErrDecodingResponse, err)
	}

	return list.Documents, nil
}

func (h *httpRemoteStore) DeleteDocument(ctx context.Context, collection, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		Delete("/api/v1/collections/{collection}/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete document request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) LookupCarImage(ctx context.Context, carMake, carModel string, year int) (models.CarImage, error) {
	ctx, cancel := context.WithTimeout(ctx, h.imageTimeout)
	defer cancel()

	var image models.CarImage
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"make":  carMake,
			"model": carModel,
			"year":  strconv.Itoa(year),
		}).
		SetResult(&image).
		Get("/api/v1/images/car")
	if err != nil {
		return models.CarImage{}, fmt.Errorf("%w: car image request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CarImage{}, err
	}
	if image.URL == "" {
		return models.CarImage{}, fmt.Errorf("%w: empty image url", ErrDecodingResponse)
	}

	return image, nil
}

func (h *httpRemoteStore) DocumentUploadURL(ctx context.Context, id string) (models.UploadURL, error) {
	var upload models.UploadURL
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&upload).
		Post("/api/v1/documents/{id}/upload-url")
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("%w: upload url request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadURL{}, err
	}

	return upload, nil
}

func (h *httpRemoteStore) AppVersion(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("%w: version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
