// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scoring holds the deterministic arithmetic of AutoBrain: the
// per-analysis penalty score of a set of classifications and the weighted
// composite score of a car. Everything here is pure.
package scoring

import (
	"math"
	"time"

	"github.com/MKhiriev/autobrain/models"
)

// ScoreResult is the outcome of scoring one analysis.
type ScoreResult struct {
	Score              int
	Urgency            models.Urgency
	DetectedIssues     []models.IssueLabel
	Confidence         float64
	CostMin            int
	CostMax            int
	IssuePenalty       float64
	Bonus              int
	MaintenancePenalty int
}

// CalculateScore scores one analysis. Every classification removes its
// penalty scaled by its confidence when the confidence reaches
// ConfidenceThreshold, and by 0.3 otherwise. A NORMAL classification above
// 0.8 adds 10 points without exceeding 100. Overdue reminders then remove
// MaintenancePenalty and the result is clamped to [0, 100].
func CalculateScore(classifications []models.Classification, reminders []models.Reminder, now time.Time) ScoreResult {
	var res ScoreResult

	score := 100.0
	for _, c := range classifications {
		penalty, ok := issuePenalty[c.Label]
		if !ok {
			penalty = unknownIssuePenalty
		}

		weight := lowConfidenceWeight
		if c.Confidence >= ConfidenceThreshold {
			weight = c.Confidence
		}
		res.IssuePenalty += penalty * weight

		if c.Label == models.IssueNormal {
			if c.Confidence > normalBonusThreshold {
				res.Bonus = normalBonus
			}
			continue
		}

		if c.Confidence >= ConfidenceThreshold {
			res.DetectedIssues = append(res.DetectedIssues, c.Label)
			cost := repairCost[c.Label]
			res.CostMin += cost.min
			res.CostMax += cost.max
		}
		res.Confidence = math.Max(res.Confidence, c.Confidence)
	}

	score -= res.IssuePenalty
	score = math.Min(score+float64(res.Bonus), 100)

	res.MaintenancePenalty = MaintenancePenalty(reminders, now)
	score -= float64(res.MaintenancePenalty)

	res.Score = clamp(int(math.Round(score)), 0, 100)
	res.Urgency = urgency(res.Score, classifications)

	return res
}

// MaintenancePenalty sums the bucketed penalty of every open overdue
// reminder, capped at MaxMaintenancePenalty.
func MaintenancePenalty(reminders []models.Reminder, now time.Time) int {
	total := 0
	for _, r := range reminders {
		total += overduePenalty(r.DaysOverdue(now))
	}
	return min(total, MaxMaintenancePenalty)
}

func urgency(score int, classifications []models.Classification) models.Urgency {
	u := UrgencyFor(score)
	for _, c := range classifications {
		if criticalIssues[c.Label] && c.Confidence >= ConfidenceThreshold && u.Rank() < models.UrgencyHigh.Rank() {
			u = models.UrgencyHigh
		}
	}
	return u
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
