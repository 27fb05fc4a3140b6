// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/workers"
	"github.com/MKhiriev/autobrain/models"
)

type App struct {
	scheduler scheduler
	ui        dashboard

	userID string
	garage []models.Car
	logger *logger.Logger
}

// NewApp resolves the user from the configured ID token, loads the garage
// and registers the background jobs on s.
func NewApp(services *service.ClientServices, s *workers.Scheduler, ui dashboard, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	userID, err := utils.ParseUserIDFromJWT(cfg.App.IDToken)
	if err != nil {
		return nil, fmt.Errorf("read user id from token: %w", err)
	}

	garage, err := loadGarage(cfg.App.GaragePath, userID)
	if err != nil {
		return nil, err
	}

	if err = workers.RegisterDefaultJobs(s, services, userID, cfg.Workers); err != nil {
		return nil, fmt.Errorf("register jobs: %w", err)
	}

	log.Info().
		Str("user_id", userID).
		Int("cars", len(garage)).
		Msg("client app created")

	return &App{
		scheduler: s,
		ui:        ui,
		userID:    userID,
		garage:    garage,
		logger:    log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.scheduler.Start(ctx)
	defer a.scheduler.Stop()

	if err := a.ui.Dashboard(ctx, a.userID, a.garage); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
