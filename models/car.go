// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Car identifies the vehicle an assessment or image lookup is made for.
type Car struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage"`
}

// MarketSignals are optional inputs of the market sub-score. Zero values
// mean the signal is unknown.
type MarketSignals struct {
	AgeYears         int     `json:"age_years"`
	Mileage          int     `json:"mileage"`
	DemandIndex      float64 `json:"demand_index"`
	AccidentHistory  bool    `json:"accident_history"`
	OwnersCount      int     `json:"owners_count"`
	HasServiceRecord bool    `json:"has_service_record"`
}
