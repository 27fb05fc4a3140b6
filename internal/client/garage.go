// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/autobrain/models"
)

var (
	ErrEmptyCarID     = errors.New("car id is empty")
	ErrDuplicateCarID = errors.New("duplicate car id")
)

// loadGarage reads the JSON array of cars at path and assigns them to
// userID. An empty path yields an empty garage.
func loadGarage(path, userID string) ([]models.Car, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read garage file: %w", err)
	}

	var cars []models.Car
	if err = json.Unmarshal(data, &cars); err != nil {
		return nil, fmt.Errorf("parse garage file: %w", err)
	}

	seen := make(map[string]struct{}, len(cars))
	for i := range cars {
		cars[i].ID = strings.TrimSpace(cars[i].ID)
		if cars[i].ID == "" {
			return nil, fmt.Errorf("car #%d: %w", i+1, ErrEmptyCarID)
		}
		if _, ok := seen[cars[i].ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCarID, cars[i].ID)
		}
		seen[cars[i].ID] = struct{}{}
		cars[i].UserID = userID
	}

	return cars, nil
}
