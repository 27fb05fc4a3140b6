// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/models"
)

func TestRenderPrompt(t *testing.T) {
	day := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	prompt, err := RenderPrompt(PromptInput{
		Car:              models.Car{Make: "Toyota", Model: "Corolla", Year: 2018, Mileage: 98000},
		TechnicalScore:   46,
		MaintenanceScore: 80,
		MarketScore:      70,
		BaseScore:        55,
		Diagnostics: []models.Diagnostic{{
			Kind: models.DiagnosticAudio, Score: 46, Urgency: models.UrgencyCritical,
			DetectedIssues: []models.IssueLabel{models.IssueKnocking, models.IssueMisfire}, CreatedAt: day,
		}},
		Overdue: []models.Reminder{{Title: "Oil change", Priority: models.PriorityHigh, DueDate: day}},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Toyota Corolla (2018), mileage 98000 km")
	assert.Contains(t, prompt, "- technical: 46")
	assert.Contains(t, prompt, "issues KNOCKING, MISFIRE")
	assert.Contains(t, prompt, "Oil change (high), due 2026-05-20")
	// пустая история обслуживания
	assert.Contains(t, prompt, "- none recorded")
	for _, k := range RequiredKeys {
		assert.Contains(t, prompt, `"`+k+`"`)
	}
}
