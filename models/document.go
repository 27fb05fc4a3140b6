// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CarDocument is the synced metadata of a file attached to a car
// (insurance, registration, inspection). The binary lives in object
// storage under FileKey.
type CarDocument struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CarID     string     `json:"car_id"`
	Title     string     `json:"title"`
	DocType   string     `json:"doc_type"`
	FileKey   string     `json:"file_key"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	SyncMeta `json:"-"`
}

// UploadURL is a presigned object storage URL issued for a car document.
type UploadURL struct {
	FileKey   string    `json:"file_key"`
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
}
