// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/autobrain/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

type scheduler interface {
	Start(ctx context.Context)
	Stop()
}

type dashboard interface {
	Dashboard(ctx context.Context, userID string, cars []models.Car) error
}
