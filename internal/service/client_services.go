// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/llm"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/notify"
	"github.com/MKhiriev/autobrain/internal/store"
)

type ClientServices struct {
	SyncService        ClientSyncService
	DiagnosticService  ClientDiagnosticService
	MaintenanceService ClientMaintenanceService
	ReminderService    ClientReminderService
	DocumentService    ClientDocumentService
	AIScoreService     ClientAIScoreService
	ImageService       ClientImageService
	CleanupService     ClientCleanupService
}

func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	generator llm.Generator,
	notifier notify.Notifier,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	return &ClientServices{
		SyncService:        NewClientSyncService(storages, remote, log),
		DiagnosticService:  NewClientDiagnosticService(storages, remote),
		MaintenanceService: NewClientMaintenanceService(storages.Maintenance),
		ReminderService:    NewClientReminderService(storages.Reminders, notifier),
		DocumentService:    NewClientDocumentService(storages.Documents, remote),
		AIScoreService:     NewClientAIScoreService(storages, generator),
		ImageService:       NewClientImageService(storages.Images, remote, cfg.Images),
		CleanupService:     NewClientCleanupService(storages, remote, cfg.Images),
	}
}
