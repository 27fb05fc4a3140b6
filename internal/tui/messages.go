// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/autobrain/models"

type dashboardLoadedMsg struct {
	pending map[string]int
	latest  map[string]models.AIScore
	status  models.SyncStatus
	err     error
}

type syncDoneMsg struct {
	reports []models.SyncReport
	err     error
}

type imageCopiedMsg struct {
	url string
	err error
}

type refreshMsg struct{}
