// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
)

//go:generate mockgen -source=client.go -destination=../mock/llm_mock.go -package=mock

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Client calls a generateContent style endpoint.
type Client struct {
	http   *utils.HTTPClient
	apiKey string
	model  string
	logger *logger.Logger
}

func NewClient(cfg config.ClientLLM, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := utils.NewHTTPClient(timeout)
	client.SetBaseURL(strings.TrimRight(cfg.Endpoint, "/"))

	return &Client{
		http:   client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: log,
	}
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var out generateResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetPathParam("model", c.model).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&out).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if resp.IsError() {
		c.logger.Error().
			Str("func", "Client.Generate").
			Int("status", resp.StatusCode()).
			Msg("model endpoint answered with an error")
		return "", fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode())
	}

	var b strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			b.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyResponse
	}

	return b.String(), nil
}
