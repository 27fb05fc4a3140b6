// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scoring

import "github.com/MKhiriev/autobrain/models"

// issuePenalty is the score a fully confident classification removes.
var issuePenalty = map[models.IssueLabel]float64{
	models.IssueKnocking:      60,
	models.IssueSmoke:         50,
	models.IssueBrakeGrinding: 45,
	models.IssueMisfire:       40,
	models.IssueFluidLeak:     35,
	models.IssueBearingNoise:  30,
	models.IssueExhaustLeak:   25,
	models.IssueVibration:     20,
	models.IssueBeltSqueal:    15,
	models.IssueNormal:        0,
}

// criticalIssues raise the urgency to at least HIGH when detected
// confidently, whatever the score.
var criticalIssues = map[models.IssueLabel]bool{
	models.IssueKnocking:      true,
	models.IssueBrakeGrinding: true,
	models.IssueSmoke:         true,
}

type costRange struct {
	min, max int
}

// repairCost is the typical repair cost range of one issue.
var repairCost = map[models.IssueLabel]costRange{
	models.IssueKnocking:      {800, 2500},
	models.IssueSmoke:         {500, 3000},
	models.IssueBrakeGrinding: {200, 600},
	models.IssueMisfire:       {150, 800},
	models.IssueFluidLeak:     {100, 900},
	models.IssueBearingNoise:  {250, 700},
	models.IssueExhaustLeak:   {150, 500},
	models.IssueVibration:     {100, 600},
	models.IssueBeltSqueal:    {50, 200},
}

// unknownIssuePenalty applies to labels missing from issuePenalty.
const unknownIssuePenalty = 20

const (
	// ConfidenceThreshold separates confident classifications, which weigh
	// by their confidence, from weak ones, which weigh lowConfidenceWeight.
	ConfidenceThreshold = 0.7
	lowConfidenceWeight = 0.3

	normalBonus          = 10
	normalBonusThreshold = 0.8

	// MaxMaintenancePenalty caps the overdue reminder penalty.
	MaxMaintenancePenalty = 40
)

// overduePenalty buckets one overdue reminder by days overdue.
func overduePenalty(days int) int {
	switch {
	case days <= 0:
		return 0
	case days <= 30:
		return 5
	case days <= 90:
		return 10
	case days <= 180:
		return 15
	default:
		return 20
	}
}

// UrgencyFor maps a score onto the urgency tiers.
func UrgencyFor(score int) models.Urgency {
	switch {
	case score < 50:
		return models.UrgencyCritical
	case score < 65:
		return models.UrgencyHigh
	case score < 80:
		return models.UrgencyMedium
	case score < 90:
		return models.UrgencyLow
	default:
		return models.UrgencyNone
	}
}
