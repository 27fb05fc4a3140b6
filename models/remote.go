// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RemoteDocument is one entry of a per-user remote collection. Body holds
// the JSON form of the entity.
type RemoteDocument struct {
	UserID     string          `json:"user_id,omitempty"`
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Body       json.RawMessage `json:"body"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DocumentList is the response of a collection listing.
type DocumentList struct {
	Documents []RemoteDocument `json:"documents"`
	Length    int              `json:"length"`
}
