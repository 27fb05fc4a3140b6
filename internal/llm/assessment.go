// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package llm renders the car assessment prompt, calls the hosted model and
// strictly parses its answer.
package llm

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Assessment is the JSON object the model must answer with. Every key is
// required; unknown keys are rejected.
type Assessment struct {
	OverallAssessment string   `json:"overall_assessment"`
	ScoreAdjustment   int      `json:"score_adjustment"`
	AdjustmentReason  string   `json:"adjustment_reason"`
	Observations      []string `json:"observations"`
	Recommendations   []string `json:"recommendations"`
	RiskLevel         string   `json:"risk_level"`
	EngineCondition   string   `json:"engine_condition"`
	MaintenanceStatus string   `json:"maintenance_status"`
	MarketOutlook     string   `json:"market_outlook"`
	EstimatedValueMin int      `json:"estimated_value_min"`
	EstimatedValueMax int      `json:"estimated_value_max"`
	PriorityRepairs   []string `json:"priority_repairs"`
	NextServiceDue    string   `json:"next_service_due"`
	Confidence        float64  `json:"confidence"`
	Summary           string   `json:"summary"`
}

// RequiredKeys lists the top-level keys of the assessment contract.
var RequiredKeys = []string{
	"overall_assessment",
	"score_adjustment",
	"adjustment_reason",
	"observations",
	"recommendations",
	"risk_level",
	"engine_condition",
	"maintenance_status",
	"market_outlook",
	"estimated_value_min",
	"estimated_value_max",
	"priority_repairs",
	"next_service_due",
	"confidence",
	"summary",
}

// NeutralAssessment is used when the model answer cannot be trusted.
func NeutralAssessment() Assessment {
	return Assessment{
		OverallAssessment: "Automatic assessment is unavailable; the score is based on recorded data only.",
		Observations:      []string{"No model observations are available for this assessment."},
		Recommendations:   []string{"Keep following the regular maintenance schedule."},
		RiskLevel:         "medium",
		Summary:           "Score computed from diagnostics, maintenance history and market data.",
	}
}

// ParseAssessment extracts the text between the first '{' and the last '}'
// and decodes it strictly. Any deviation yields a *ParseError.
func ParseAssessment(text string) (Assessment, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return Assessment{}, &ParseError{Reason: "no json object found"}
	}
	raw := []byte(text[start : end+1])

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Assessment{}, &ParseError{Reason: "invalid json", Err: err}
	}
	if missing := missingKeys(keys); len(missing) > 0 {
		return Assessment{}, &ParseError{Reason: "missing keys " + strings.Join(missing, ", ")}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var a Assessment
	if err := dec.Decode(&a); err != nil {
		return Assessment{}, &ParseError{Reason: "schema mismatch", Err: err}
	}

	return a, nil
}

func missingKeys(keys map[string]json.RawMessage) []string {
	var missing []string
	for _, k := range RequiredKeys {
		if _, ok := keys[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}
