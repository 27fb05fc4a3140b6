// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrTransport wraps failures that produced no HTTP response at all.
	ErrTransport = errors.New("transport failure")

	ErrDecodingResponse = errors.New("error decoding response")
)

var transientErrors = []error{
	ErrTransport,
	ErrTooManyRequests,
	ErrInternalServerError,
	ErrBadGateway,
	ErrServiceUnavailable,
	ErrGatewayTimeout,
	context.DeadlineExceeded,
}

// IsTransient reports whether err may go away on retry: network failures,
// timeouts, 429 and 5xx answers. Every other error, including other 4xx
// answers and context cancellation, is permanent.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	for _, target := range transientErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
