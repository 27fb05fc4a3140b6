// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaintenanceRecord is a completed service entry in a car's history.
type MaintenanceRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CarID       string    `json:"car_id"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Mileage     int       `json:"mileage"`
	Cost        float64   `json:"cost"`
	ServiceDate time.Time `json:"service_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	SyncMeta `json:"-"`
}
