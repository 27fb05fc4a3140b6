// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AIScore is one composite health assessment of a car. Rows are append-only:
// history is kept and only the sync flags ever change.
type AIScore struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CarID            string    `json:"car_id"`
	OverallScore     int       `json:"overall_score"`
	TechnicalScore   int       `json:"technical_score"`
	MaintenanceScore int       `json:"maintenance_score"`
	MarketScore      int       `json:"market_score"`
	LLMAdjustment    int       `json:"llm_adjustment"`
	Observations     []string  `json:"observations"`
	Recommendations  []string  `json:"recommendations"`
	Summary          string    `json:"summary"`
	CreatedAt        time.Time `json:"created_at"`

	SyncMeta `json:"-"`
}
