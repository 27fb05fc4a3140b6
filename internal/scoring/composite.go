// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/MKhiriev/autobrain/models"
)

// Weights and neutral defaults of the composite score.
const (
	TechnicalWeight   = 0.7
	MaintenanceWeight = 0.2
	MarketWeight      = 0.1

	NeutralTechnical   = 75
	NeutralMaintenance = 70
	NeutralMarket      = 70

	MaxLLMAdjustment = 10
)

// SubScores are the inputs of the composite score. A nil field is unknown
// and takes its neutral default.
type SubScores struct {
	Technical   *int
	Maintenance *int
	Market      *int
}

// Composite is the weighted car score after the LLM adjustment.
type Composite struct {
	Overall       int
	Technical     int
	Maintenance   int
	Market        int
	LLMAdjustment int
}

// CompositeScore weights the sub-scores 70/20/10, adds llmAdjustment clamped
// to [-10, 10] and clamps the result to [0, 100].
func CompositeScore(sub SubScores, llmAdjustment int) Composite {
	c := Composite{
		Technical:     valueOr(sub.Technical, NeutralTechnical),
		Maintenance:   valueOr(sub.Maintenance, NeutralMaintenance),
		Market:        valueOr(sub.Market, NeutralMarket),
		LLMAdjustment: ClampAdjustment(llmAdjustment),
	}

	base := TechnicalWeight*float64(c.Technical) +
		MaintenanceWeight*float64(c.Maintenance) +
		MarketWeight*float64(c.Market)

	c.Overall = clamp(int(math.Round(base))+c.LLMAdjustment, 0, 100)
	return c
}

// ClampAdjustment bounds an LLM adjustment to [-10, 10].
func ClampAdjustment(adj int) int {
	return clamp(adj, -MaxLLMAdjustment, MaxLLMAdjustment)
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return clamp(*v, 0, 100)
}

// TechnicalScore averages the scores of the newest audio and the newest
// video diagnostic. It returns nil when there is no diagnostic.
func TechnicalScore(diagnostics []models.Diagnostic) *int {
	latest := make(map[models.DiagnosticKind]models.Diagnostic, 2)
	for _, d := range diagnostics {
		if cur, ok := latest[d.Kind]; !ok || d.CreatedAt.After(cur.CreatedAt) {
			latest[d.Kind] = d
		}
	}
	if len(latest) == 0 {
		return nil
	}

	sum := 0
	for _, d := range latest {
		sum += d.Score
	}
	score := int(math.Round(float64(sum) / float64(len(latest))))
	return &score
}

// MaintenanceScore starts at 100, removes the overdue reminder penalty and
// a recency penalty when the last service is old: 5 points after 180 days,
// 15 after a year. It returns nil when neither records nor reminders exist.
func MaintenanceScore(records []models.MaintenanceRecord, reminders []models.Reminder, now time.Time) *int {
	if len(records) == 0 && len(reminders) == 0 {
		return nil
	}

	score := 100 - MaintenancePenalty(reminders, now)

	if len(records) > 0 {
		sorted := make([]models.MaintenanceRecord, len(records))
		copy(sorted, records)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ServiceDate.After(sorted[j].ServiceDate) })

		days := int(now.Sub(sorted[0].ServiceDate).Hours() / 24)
		switch {
		case days > 365:
			score -= 15
		case days > 180:
			score -= 5
		}
	}

	score = clamp(score, 0, 100)
	return &score
}

// MarketScore rates resale attractiveness from the known signals. It
// returns nil when no signal is known.
func MarketScore(s models.MarketSignals) *int {
	if s == (models.MarketSignals{}) {
		return nil
	}

	score := 80
	if s.AgeYears > 3 {
		score -= min(2*(s.AgeYears-3), 30)
	}
	score -= min(5*(s.Mileage/50_000), 25)
	if s.AccidentHistory {
		score -= 15
	}
	if s.OwnersCount > 2 {
		score -= min(5*(s.OwnersCount-2), 15)
	}
	if s.HasServiceRecord {
		score += 5
	}
	score += int(math.Round(math.Max(-1, math.Min(s.DemandIndex, 1)) * 10))

	score = clamp(score, 0, 100)
	return &score
}
