// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client; every outbound call of the project (remote
// store, LLM, image search) goes through one of these.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// A positive timeout bounds every request made by the client.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
