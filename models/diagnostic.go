// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IssueLabel is a classifier output label for a detected vehicle problem.
type IssueLabel string

const (
	IssueKnocking      IssueLabel = "KNOCKING"
	IssueMisfire       IssueLabel = "MISFIRE"
	IssueBrakeGrinding IssueLabel = "BRAKE_GRINDING"
	IssueBearingNoise  IssueLabel = "BEARING_NOISE"
	IssueBeltSqueal    IssueLabel = "BELT_SQUEAL"
	IssueExhaustLeak   IssueLabel = "EXHAUST_LEAK"
	IssueVibration     IssueLabel = "VIBRATION"
	IssueFluidLeak     IssueLabel = "FLUID_LEAK"
	IssueSmoke         IssueLabel = "SMOKE"
	IssueNormal        IssueLabel = "NORMAL"
)

// Classification is a single (label, confidence) pair produced by an
// audio or video analysis. Confidence is in [0,1].
type Classification struct {
	Label      IssueLabel `json:"label"`
	Confidence float64    `json:"confidence"`
}

// Urgency ranks how soon the owner should act on a diagnostic result.
type Urgency string

const (
	UrgencyNone     Urgency = "NONE"
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// Rank orders urgencies from NONE (0) to CRITICAL (4).
func (u Urgency) Rank() int {
	switch u {
	case UrgencyLow:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyHigh:
		return 3
	case UrgencyCritical:
		return 4
	default:
		return 0
	}
}

// DiagnosticKind separates audio and video analyses, which live in
// different tables and collections.
type DiagnosticKind string

const (
	DiagnosticAudio DiagnosticKind = "audio"
	DiagnosticVideo DiagnosticKind = "video"
)

// Collection returns the remote collection of the kind.
func (k DiagnosticKind) Collection() string {
	if k == DiagnosticVideo {
		return CollectionVideoDiagnostics
	}
	return CollectionAudioDiagnostics
}

// Diagnostic is the stored result of one audio or video analysis.
type Diagnostic struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	CarID          string         `json:"car_id"`
	Kind           DiagnosticKind `json:"kind"`
	Score          int            `json:"score"`
	DetectedIssues []IssueLabel   `json:"detected_issues"`
	Confidence     float64        `json:"confidence"`
	CostMin        int            `json:"cost_min"`
	CostMax        int            `json:"cost_max"`
	Urgency        Urgency        `json:"urgency"`
	AutoDeleteAt   *time.Time     `json:"auto_delete_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	SyncMeta `json:"-"`
}
