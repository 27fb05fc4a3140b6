// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/MKhiriev/autobrain/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var assessmentTemplate = template.Must(
	template.New("assessment.tmpl").
		Option("missingkey=zero").
		Funcs(template.FuncMap{"join": joinLabels}).
		ParseFS(templatesFS, "templates/assessment.tmpl"),
)

// PromptInput is the context the assessment prompt is rendered from.
type PromptInput struct {
	Car              models.Car
	TechnicalScore   int
	MaintenanceScore int
	MarketScore      int
	BaseScore        int
	Diagnostics      []models.Diagnostic
	History          []models.MaintenanceRecord
	Overdue          []models.Reminder
}

// RenderPrompt renders the assessment prompt.
func RenderPrompt(in PromptInput) (string, error) {
	var b bytes.Buffer
	if err := assessmentTemplate.Execute(&b, in); err != nil {
		return "", fmt.Errorf("render assessment prompt: %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}

func joinLabels(labels []models.IssueLabel) string {
	if len(labels) == 0 {
		return "none"
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
