// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client dashboard: pending rows per collection,
// the sync state and the latest score of every car in the garage.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/models"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Dashboard blocks until the user quits or ctx is cancelled.
func (t *TUI) Dashboard(ctx context.Context, userID string, cars []models.Car) error {
	model := newDashboardModel(ctx, t.services, userID, cars)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("dashboard closed by signal")
		return nil
	}
	return err
}
